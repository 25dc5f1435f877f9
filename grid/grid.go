// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package grid implements the heightmap-tessellation engine: it turns
// a multi-frame point trajectory into a piecewise-planar surface and
// computes its area by summing two-triangle cells over a lattice.
package grid

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// WeightFunc scores how much an atom at pos contributes to a lattice
// corner at corner. Implementations must be non-negative within a cell
// and larger for closer atoms.
type WeightFunc func(pos, corner r3.Vector) float64

// LinearWeight is the "linear" kernel: diag - |atom - corner|, where
// diag = sqrt(3)*cellWidth.
func LinearWeight(cellWidth float64) WeightFunc {
	diag := math.Sqrt(3) * cellWidth
	return func(pos, corner r3.Vector) float64 {
		return diag - pos.Sub(corner).Norm()
	}
}

// SquareWeight is the "square" kernel: diag^2 - |atom - corner|^2,
// where diag = sqrt(3)*cellWidth.
func SquareWeight(cellWidth float64) WeightFunc {
	diag2 := 3 * cellWidth * cellWidth
	return func(pos, corner r3.Vector) float64 {
		return diag2 - pos.Sub(corner).Norm2()
	}
}

// epsReal is the floating-point noise floor used when deciding whether
// a lattice column is "empty". It is unexported and has no setter, so
// code outside this package cannot change it.
var epsReal = 1.1920929e-07 // float32 epsilon, matching the original's FLT_EPSILON

// Grid is the lattice heightmap: a 3-D array of weights, a 2-D
// heightmap of z-indices (-1 = empty column), and a 2-D array of
// per-cell areas.
type Grid struct {
	DimX, DimY, DimZ int
	CellWidth        float64
	Origin           r3.Vector // componentwise min over all frames

	Weights   []float64 // DimX*DimY*DimZ, indexed [x*DimY*DimZ + y*DimZ + z]
	Heightmap []int     // DimX*DimY, indexed [x*DimY + y]; -1 = empty
	Areas     []float64 // (DimX-1)*(DimY-1), indexed [x*(DimY-1) + y]

	NumEmpty    int
	SurfaceArea float64
	AreaPerAtom float64
}

// Build runs the full grid pipeline (lattice builder -> weight loader
// -> heightmap -> tessellator) over a trajectory of nframes frames of
// natoms 3-vectors each, and returns the filled Grid.
//
// frames[f][a] is the position of atom a in frame f. cellWidth must be
// positive.
func Build(frames [][]r3.Vector, cellWidth float64, fweight WeightFunc) (*Grid, error) {
	if cellWidth <= 0 {
		return nil, fmt.Errorf("grid: cell_width must be positive, got %v", cellWidth)
	}
	natoms := 0
	if len(frames) > 0 {
		natoms = len(frames[0])
	}
	if natoms == 0 {
		return nil, fmt.Errorf("grid: no atoms in trajectory")
	}

	g := buildLattice(frames, cellWidth)
	loadWeights(g, frames, fweight)
	genHeightmap(g)
	tessellate(g)
	g.AreaPerAtom = g.SurfaceArea / float64(natoms)

	return g, nil
}
