// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command tessellate-delaunay triangulates a 2-D point set and renders
// the result as an SVG, optionally applying the periodic-boundary area
// correction.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/memsurf/tessellate/delaunay"
	"github.com/memsurf/tessellate/internal/config"
	"github.com/memsurf/tessellate/periodic"
)

func main() {
	app := &cli.App{
		Name:  "tessellate-delaunay",
		Usage: "triangulate a 2-D point set and render it as SVG",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "points", Aliases: []string{"p"}, Required: true, Usage: "path to an \"x y\" per line point file"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "delaunay.svg", Usage: "output SVG path"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "optional YAML/JSON config file"},
			&cli.Float64Flag{Name: "eps", Usage: "override config duplicate-removal epsilon"},
			&cli.BoolFlag{Name: "correct", Usage: "apply periodic-boundary area correction"},
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
		return fmt.Errorf("tessellate-delaunay: building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("eps") {
		cfg.Eps = c.Float64("eps")
	}
	if c.IsSet("correct") {
		cfg.Correct = c.Bool("correct")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := os.Open(c.String("points"))
	if err != nil {
		return fmt.Errorf("tessellate-delaunay: %w", err)
	}
	defer f.Close()

	pts, err := readPoints(f)
	if err != nil {
		return fmt.Errorf("tessellate-delaunay: %w", err)
	}
	logger.Info("loaded points", zap.Int("count", len(pts)))

	tri, err := delaunay.Triangulate(pts, delaunay.WithEps(cfg.Eps))
	if err != nil {
		return fmt.Errorf("tessellate-delaunay: %w", err)
	}
	logger.Info("triangulated", zap.Int("triangles", tri.NumTriangles()))

	if cfg.Correct {
		result, err := periodic.CorrectArea(pts)
		if err != nil {
			return fmt.Errorf("tessellate-delaunay: periodic correction: %w", err)
		}
		logger.Info("periodic-boundary correction",
			zap.Float64("area", result.Area),
			zap.Float64("area1_uncorrected", result.Area1),
			zap.Float64("area2_translated", result.Area2))
	}

	out, err := os.Create(c.String("out"))
	if err != nil {
		return fmt.Errorf("tessellate-delaunay: %w", err)
	}
	defer out.Close()

	if err := renderSVG(out, tri); err != nil {
		return fmt.Errorf("tessellate-delaunay: %w", err)
	}
	logger.Info("wrote svg", zap.String("path", c.String("out")))

	return nil
}

// readPoints reads "x y" pairs, one per line, skipping blank lines.
func readPoints(r *os.File) ([]delaunay.Point, error) {
	scanner := bufio.NewScanner(r)
	var pts []delaunay.Point
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 fields, got %d", lineNo, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pts = append(pts, delaunay.Point{X: x, Y: y})
	}
	return pts, scanner.Err()
}

// renderSVG draws the triangulation with svgo.
func renderSVG(w *os.File, tri *delaunay.Triangulation) error {
	const (
		width        = 800
		height       = 800
		margin       = 20
		polygonStyle = "fill:none;stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
		siteStyle    = "fill:rgb(0,0,255)"
	)

	minX, minY, maxX, maxY := bounds(tri.Points)
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	toScreen := func(p delaunay.Point) (int, int) {
		x := margin + (p.X-minX)/spanX*(width-2*margin)
		y := margin + (maxY-p.Y)/spanY*(height-2*margin)
		return int(x), int(y)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	for i := 0; i < tri.NumTriangles(); i++ {
		ia, ib, ic := tri.TriangleAt(i)
		xs := make([]int, 3)
		ys := make([]int, 3)
		xs[0], ys[0] = toScreen(tri.Points[ia])
		xs[1], ys[1] = toScreen(tri.Points[ib])
		xs[2], ys[2] = toScreen(tri.Points[ic])
		canvas.Polygon(xs, ys, polygonStyle)
	}

	for _, p := range tri.Points {
		x, y := toScreen(p)
		canvas.Circle(x, y, 3, siteStyle)
	}

	canvas.End()
	return nil
}

func bounds(pts []delaunay.Point) (minX, minY, maxX, maxY float64) {
	if len(pts) == 0 {
		return 0, 0, 1, 1
	}
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}
