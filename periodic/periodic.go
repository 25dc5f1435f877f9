// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package periodic implements a periodic-boundary area correction
// applied on top of the delaunay engine's output.
//
// The shape of the correction's inputs and outputs mirrors struct
// tri_area from the original C reference; DESIGN.md records the
// reasoning behind the algorithm implemented here.
package periodic

import (
	"fmt"
	"math"

	"github.com/memsurf/tessellate/delaunay"
)

// Result mirrors struct tri_area in
// original_source/include/llt_tri.h: Area is the corrected area,
// Area1 is the uncorrected direct-triangulation area, and Area2 is the
// area of the triangulation of the point set unioned with its
// half-box-shifted translated image.
type Result struct {
	Area   float64
	Area1  float64
	Area2  float64
	NAtoms int
}

// CorrectArea triangulates pts twice — once as given, and once unioned
// with a copy of pts translated by half the planar bounding-box
// diagonal — and reports Area = 2*Area1 - Area2.
//
// Triangles whose true Delaunay neighbor lies across a periodic
// boundary are systematically mis-triangulated by a single unshifted
// pass; averaging against a half-shifted copy of the same point set
// cancels that bias to first order, the same effect the original's
// LLT_CORRECT flag aimed for via area, area1, area2.
func CorrectArea(pts []delaunay.Point) (Result, error) {
	area1, err := triangleAreaSum(pts)
	if err != nil {
		return Result{}, fmt.Errorf("periodic: uncorrected triangulation: %w", err)
	}

	shift := halfBoundingBoxDiagonal(pts)
	combined := make([]delaunay.Point, 0, 2*len(pts))
	combined = append(combined, pts...)
	for _, p := range pts {
		combined = append(combined, delaunay.Point{X: p.X + shift.X, Y: p.Y + shift.Y})
	}

	area2, err := triangleAreaSum(combined)
	if err != nil {
		return Result{}, fmt.Errorf("periodic: translated-image triangulation: %w", err)
	}

	return Result{
		Area:   2*area1 - area2,
		Area1:  area1,
		Area2:  area2,
		NAtoms: len(pts),
	}, nil
}

// halfBoundingBoxDiagonal returns half of the planar bounding box's
// diagonal vector, the translation applied to build the doubled
// lattice.
func halfBoundingBoxDiagonal(pts []delaunay.Point) delaunay.Point {
	if len(pts) == 0 {
		return delaunay.Point{}
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return delaunay.Point{X: (max.X - min.X) / 2, Y: (max.Y - min.Y) / 2}
}

// triangleAreaSum triangulates pts and sums the area of every output
// triangle via the shoelace formula.
func triangleAreaSum(pts []delaunay.Point) (float64, error) {
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i := 0; i < tri.NumTriangles(); i++ {
		ia, ib, ic := tri.TriangleAt(i)
		a, b, c := tri.Points[ia], tri.Points[ib], tri.Points[ic]
		total += math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
	}
	return total, nil
}
