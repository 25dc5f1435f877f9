// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

import (
	"math"

	"github.com/golang/geo/r3"
)

// buildLattice scans every (frame, atom) position to find the
// axis-wise bounding box, sizes the lattice, and allocates the
// weights/heightmap/areas arrays.
func buildLattice(frames [][]r3.Vector, cellWidth float64) *Grid {
	min := r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	for _, frame := range frames {
		for _, p := range frame {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			min.Z = math.Min(min.Z, p.Z)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
			max.Z = math.Max(max.Z, p.Z)
		}
	}

	// # lattice points in each dim: the int cast truncates, so add one
	// for the partially covered cell, plus one for the extra point at
	// the far face.
	dimx := int((max.X-min.X)/cellWidth) + 2
	dimy := int((max.Y-min.Y)/cellWidth) + 2
	dimz := int((max.Z-min.Z)/cellWidth) + 2

	g := &Grid{
		DimX:      dimx,
		DimY:      dimy,
		DimZ:      dimz,
		CellWidth: cellWidth,
		Origin:    min,
		Weights:   make([]float64, dimx*dimy*dimz),
		Heightmap: make([]int, dimx*dimy),
		Areas:     make([]float64, (dimx-1)*(dimy-1)),
	}
	return g
}
