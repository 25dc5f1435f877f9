// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// lowerCommonTangent computes the lower common tangent (LCT) of two
// already-triangulated convex hulls: lrightmost is the rightmost
// vertex of the left subhull, rleftmost is the leftmost vertex of the
// right subhull.
func lowerCommonTangent(pr *predicates, lrightmost, rleftmost *vertex) (left, right *vertex) {
	x, y := lrightmost, rleftmost
	rfast := first(y)
	var lfast *vertex
	if fx := first(x); fx != nil {
		lfast = pred(x, fx)
	}

	for {
		switch {
		case rfast != nil && pr.rightOf(rfast.p, x.p, y.p):
			next := succ(rfast, y)
			y, rfast = rfast, next
		case lfast != nil && pr.rightOf(lfast.p, x.p, y.p):
			next := pred(lfast, x)
			x, lfast = lfast, next
		default:
			return x, y
		}
	}
}

// upperCommonTangent computes the upper common tangent (UCT) of two
// already-triangulated convex hulls, symmetric to the lower common
// tangent with leftOf substituted for rightOf.
func upperCommonTangent(pr *predicates, lrightmost, rleftmost *vertex) (left, right *vertex) {
	x, y := lrightmost, rleftmost
	lfast := first(x)
	var rfast *vertex
	if fy := first(y); fy != nil {
		rfast = pred(y, fy)
	}

	for {
		switch {
		case rfast != nil && pr.leftOf(rfast.p, x.p, y.p):
			next := pred(rfast, y)
			y, rfast = rfast, next
		case lfast != nil && pr.leftOf(lfast.p, x.p, y.p):
			next := succ(lfast, x)
			x, lfast = lfast, next
		default:
			return x, y
		}
	}
}
