// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	gomeshtypes "github.com/iceisfun/gomesh/types"
	"github.com/iceisfun/gomesh/algorithm/robust"
)

// predicates wraps the exact-arithmetic orientation and in-circle
// routines that back every geometric comparison in the Delaunay core.
// The core never compares floating-point coordinates directly; it
// always routes through ccw/leftOf/rightOf/incircle below.
//
// newPredicates is the Go analogue of the one-shot `dtinit()` the
// original C implementation required before any triangulation: unlike
// Shewchuk's adaptive-precision routines, gomesh's robust package needs
// no global initialization, so this constructor is a no-op placeholder
// that exists to keep the "construct once, use many times" contract
// the rest of the package assumes of it.
type predicates struct{}

func newPredicates() *predicates {
	return &predicates{}
}

func toGomesh(p Point) gomeshtypes.Point {
	return gomeshtypes.Point{X: p.X, Y: p.Y}
}

// orient2d reports the sign of twice the signed area of triangle
// (a, b, c): positive iff a, b, c are in CCW order.
func (predicates) orient2d(a, b, c Point) float64 {
	return robust.Orient2D(toGomesh(a), toGomesh(b), toGomesh(c))
}

// incircle reports whether d lies strictly inside the circumcircle of
// the CCW triangle (a, b, c).
func (pr predicates) incircle(a, b, c, d Point) bool {
	return robust.InCircle(toGomesh(a), toGomesh(b), toGomesh(c), toGomesh(d)) > 0
}

// ccw reports whether a, b, c are in strict counter-clockwise order.
func (pr predicates) ccw(a, b, c Point) bool {
	return pr.orient2d(a, b, c) > 0
}

// leftOf reports whether x lies strictly to the left of the directed
// edge ea -> eb.
func (pr predicates) leftOf(x, ea, eb Point) bool {
	return pr.ccw(x, ea, eb)
}

// rightOf reports whether x lies strictly to the right of the directed
// edge ea -> eb.
func (pr predicates) rightOf(x, ea, eb Point) bool {
	return pr.ccw(x, eb, ea)
}
