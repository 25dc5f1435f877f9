// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command tessellate-grid builds a heightmap-tessellation grid from a
// point trajectory and writes its diagnostic dump and area summary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/memsurf/tessellate/grid"
	"github.com/memsurf/tessellate/internal/config"
	"github.com/memsurf/tessellate/trajectory"
)

func main() {
	app := &cli.App{
		Name:  "tessellate-grid",
		Usage: "tessellate a point trajectory into a heightmap surface",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "traj", Aliases: []string{"t"}, Required: true, Usage: "path to a multi-frame \"x y z\" trajectory file"},
			&cli.StringFlag{Name: "ndx", Usage: "optional .ndx index file"},
			&cli.StringFlag{Name: "group", Usage: "index group name, required if --ndx is set"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "optional YAML/JSON config file"},
			&cli.Float64Flag{Name: "cell-width", Usage: "override config cell width"},
			&cli.StringFlag{Name: "weight", Usage: "override config weight kernel: linear|square"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "grid.txt", Usage: "diagnostic dump output path"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("tessellate-grid: building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("cell-width") {
		cfg.CellWidth = c.Float64("cell-width")
	}
	if c.IsSet("weight") {
		cfg.Weight = config.WeightKernel(c.String("weight"))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	traj, err := loadTrajectory(c)
	if err != nil {
		return fmt.Errorf("tessellate-grid: %w", err)
	}
	logger.Info("loaded trajectory", zap.Int("frames", len(traj.Frames)), zap.Int("atoms", traj.NAtoms))

	var fweight grid.WeightFunc
	switch cfg.Weight {
	case config.WeightSquare:
		fweight = grid.SquareWeight(cfg.CellWidth)
	default:
		fweight = grid.LinearWeight(cfg.CellWidth)
	}

	g, err := grid.Build(traj.Positions(), cfg.CellWidth, fweight)
	if err != nil {
		return fmt.Errorf("tessellate-grid: %w", err)
	}
	logger.Info("tessellated grid",
		zap.Float64("surface_area", g.SurfaceArea),
		zap.Float64("area_per_atom", g.AreaPerAtom),
		zap.Int("empty_columns", g.NumEmpty))

	out, err := os.Create(c.String("out"))
	if err != nil {
		return fmt.Errorf("tessellate-grid: %w", err)
	}
	defer out.Close()

	if err := grid.WriteDump(out, g, traj.NAtoms); err != nil {
		return fmt.Errorf("tessellate-grid: %w", err)
	}
	logger.Info("wrote diagnostic dump", zap.String("path", c.String("out")))

	return nil
}

func loadTrajectory(c *cli.Context) (*trajectory.Trajectory, error) {
	f, err := os.Open(c.String("traj"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	traj, err := trajectory.NewXYZReader(f).ReadTrajectory()
	if err != nil {
		return nil, err
	}

	ndxPath := c.String("ndx")
	if ndxPath == "" {
		return traj, nil
	}
	if c.String("group") == "" {
		return nil, fmt.Errorf("--group is required when --ndx is set")
	}

	ndx, err := os.Open(ndxPath)
	if err != nil {
		return nil, err
	}
	defer ndx.Close()

	group, err := trajectory.ReadIndexGroup(ndx, c.String("group"))
	if err != nil {
		return nil, err
	}

	return trajectory.FilterByIndex(traj, group)
}
