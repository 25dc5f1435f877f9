// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay implements a from-scratch 2-D Delaunay triangulator
// using the divide-and-conquer algorithm of Lee & Schachter with the
// Guibas-Stolfi merge step.
package delaunay

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2-D coordinate pair. It is an alias for r2.Vec so callers
// already working with gonum's spatial types can pass their data
// straight through.
type Point = r2.Vec

const defaultEps = 1e-12

// ErrTooFewPoints is returned when fewer than two points are supplied,
// or fewer than two remain after duplicate removal.
var ErrTooFewPoints = errors.New("delaunay: too few points")

// Triangulation is the result of triangulating a point set.
type Triangulation struct {
	// Points are the input points after sorting and duplicate removal.
	// This is the same backing array callers get indices into.
	Points []Point
	// Triangles is a flat array of 3*NumTriangles() indices into Points,
	// each triple enumerating one triangle in CCW order.
	Triangles []int
}

// NumTriangles returns the number of triangles in the triangulation.
func (t *Triangulation) NumTriangles() int {
	return len(t.Triangles) / 3
}

// TriangleAt returns the three point indices of triangle i.
// It panics if i is out of range.
func (t *Triangulation) TriangleAt(i int) (a, b, c int) {
	base := 3 * i
	return t.Triangles[base], t.Triangles[base+1], t.Triangles[base+2]
}

// Options holds configuration for a triangulation run.
type Options struct {
	// Eps is the tolerance used to decide whether two points coincide
	// during duplicate removal. Defaults to 1e-12.
	Eps float64
}

// Option configures a Triangulate call.
type Option func(*Options) error

// WithEps sets the duplicate-removal tolerance. It must be positive.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Triangulate computes the Delaunay triangulation of pts.
//
// pts is not mutated; Triangulate works on an internal copy that it
// sorts lexicographically (primary X ascending, secondary Y ascending)
// and deduplicates before triangulating, the ordering the merge step
// requires.
//
// If fewer than two points remain after deduplication, Triangulate
// returns ErrTooFewPoints and an empty Triangulation — this is a
// reported, non-fatal condition, not a crash.
func Triangulate(pts []Point, setters ...Option) (*Triangulation, error) {
	opts := Options{Eps: defaultEps}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(pts) < 2 {
		return &Triangulation{}, ErrTooFewPoints
	}

	verts := make([]*vertex, len(pts))
	for i, p := range pts {
		verts[i] = &vertex{p: p}
	}
	sort.Slice(verts, func(i, j int) bool {
		return less(verts[i].p, verts[j].p, opts.Eps)
	})

	verts = compactDuplicates(verts, opts.Eps)
	if len(verts) < 2 {
		return &Triangulation{}, ErrTooFewPoints
	}

	pr := newPredicates()
	triangulateRange(pr, verts, 0, len(verts)-1)

	points := make([]Point, len(verts))
	for i, v := range verts {
		points[i] = v.p
		v.index = i
	}

	tris := extractTriangles(pr, verts)

	return &Triangulation{Points: points, Triangles: tris}, nil
}

// less implements the lexicographic order used to sort and deduplicate
// vertices: primary X ascending, secondary Y ascending, within eps.
func less(a, b Point, eps float64) bool {
	dx := a.X - b.X
	if dx < -eps || dx > eps {
		return dx < 0
	}
	return a.Y < b.Y
}

// compactDuplicates removes vertices that are within eps of the
// previous (already-sorted) vertex in both coordinates, compacting the
// slice in place via a two-index sweep.
//
// This is the corrected form of the duplicate-removal step: the
// original C implementation shifted `nverts - i + 1` *bytes* via
// memmove instead of `(nverts - i - 1) * sizeof(Vert)` bytes, an
// off-by-construction bug present in that version. The fix here is to
// compact the array of unique sorted vertices with a simple two-index
// sweep instead of any byte-oriented shift.
func compactDuplicates(verts []*vertex, eps float64) []*vertex {
	if len(verts) == 0 {
		return verts
	}
	out := verts[:1]
	for i := 1; i < len(verts); i++ {
		prev := out[len(out)-1]
		dx := verts[i].p.X - prev.p.X
		dy := verts[i].p.Y - prev.p.Y
		if dx > -eps && dx < eps && dy > -eps && dy < eps {
			continue // duplicate, drop it
		}
		out = append(out, verts[i])
	}
	return out
}
