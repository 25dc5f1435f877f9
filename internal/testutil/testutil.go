// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package testutil generates reproducible random point sets for tests
// across the delaunay, grid, and periodic packages.
package testutil

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/r2"
)

// RandomPlanarPoints generates cnt random 2-D points uniformly over
// [0, side) x [0, side). The seed parameter ensures reproducibility.
func RandomPlanarPoints(cnt int, side float64, seed int64) []r2.Vec {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	pts := make([]r2.Vec, cnt)
	for i := range cnt {
		pts[i] = r2.Vec{X: random.Float64() * side, Y: random.Float64() * side}
	}
	return pts
}

// RandomTrajectory generates nframes frames of natoms random 3-D
// positions each, confined to [0, side]^3, with every atom performing
// an independent random walk of the given step size across frames.
func RandomTrajectory(nframes, natoms int, side, step float64, seed int64) [][]r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))

	frames := make([][]r3.Vector, nframes)
	cur := make([]r3.Vector, natoms)
	for i := range cur {
		cur[i] = r3.Vector{
			X: random.Float64() * side,
			Y: random.Float64() * side,
			Z: random.Float64() * side,
		}
	}

	for f := 0; f < nframes; f++ {
		if f > 0 {
			for i := range cur {
				cur[i] = r3.Vector{
					X: clamp(cur[i].X+(random.Float64()*2-1)*step, side),
					Y: clamp(cur[i].Y+(random.Float64()*2-1)*step, side),
					Z: clamp(cur[i].Z+(random.Float64()*2-1)*step, side),
				}
			}
		}
		frame := make([]r3.Vector, natoms)
		copy(frame, cur)
		frames[f] = frame
	}

	return frames
}

func clamp(v, side float64) float64 {
	if v < 0 {
		return 0
	}
	if v > side {
		return side
	}
	return v
}
