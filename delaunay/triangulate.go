// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// triangulateRange triangulates verts[ia..ib] in place, assuming they
// are already sorted lexicographically, and returns the leftmost and
// rightmost vertices of the resulting subhull.
func triangulateRange(pr *predicates, verts []*vertex, ia, ib int) (leftmost, rightmost *vertex) {
	switch ib - ia {
	case 1:
		connect(pr, verts[ia], verts[ib])
		return verts[ia], verts[ib]
	case 2:
		connect(pr, verts[ia], verts[ia+1])
		connect(pr, verts[ia+1], verts[ib])
		if pr.ccw(verts[ia].p, verts[ia+1].p, verts[ib].p) ||
			pr.ccw(verts[ia].p, verts[ib].p, verts[ia+1].p) {
			connect(pr, verts[ia], verts[ib])
		} // else collinear: leave the edge (ia, ib) unconnected
		return verts[ia], verts[ib]
	}

	if ib-ia < 1 {
		// fewer than two points in this range: invalid, nothing to do
		return nil, nil
	}

	mid := (ia + ib) / 2
	lo, li := triangulateRange(pr, verts, ia, mid)
	ri, ro := triangulateRange(pr, verts, mid+1, ib)

	lctl, lctr := lowerCommonTangent(pr, li, ri)
	uctl, uctr := upperCommonTangent(pr, li, ri)

	zipperMerge(pr, lctl, lctr, uctl, uctr)

	return lo, ro
}

// zipperMerge walks the merge seam from the base edge (li, ri) up to
// the upper common tangent, flipping away non-Delaunay edges and
// zipping in new Delaunay edges as it goes (the Guibas-Stolfi zipper
// merge).
func zipperMerge(pr *predicates, lctl, lctr, uctl, uctr *vertex) {
	li, ri := lctl, lctr

	for li != uctl || ri != uctr {
		rightInvalid, leftInvalid := false, false
		connect(pr, li, ri)

		r1 := pred(ri, li)
		if r1 != nil && pr.leftOf(r1.p, li.p, ri.p) {
			r2 := pred(ri, r1)
			for r2 != nil && pr.incircle(r1.p, li.p, ri.p, r2.p) {
				cut(ri, r1)
				r1 = r2
				r2 = pred(ri, r1)
			}
		} else {
			rightInvalid = true
		}

		l1 := succ(li, ri)
		if l1 != nil && pr.rightOf(l1.p, ri.p, li.p) {
			l2 := succ(li, l1)
			for l2 != nil && pr.incircle(li.p, ri.p, l1.p, l2.p) {
				cut(li, l1)
				l1 = l2
				l2 = succ(li, l1)
			}
		} else {
			leftInvalid = true
		}

		switch {
		case rightInvalid:
			li = l1
		case leftInvalid:
			ri = r1
		case !pr.incircle(li.p, ri.p, r1.p, l1.p):
			ri = r1
		default:
			li = l1
		}
	}

	connect(pr, uctl, uctr)
}
