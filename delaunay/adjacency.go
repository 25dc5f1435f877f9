// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// vertex is a handle into the point set plus its adjacency list: a
// circular doubly-linked sequence of neighbor references ordered CCW
// around the vertex, starting from the convex-hull-successor
// direction.
//
// The original C implementation models this with raw pointers and an
// arena-free malloc per node; Go has no raw pointers worth emulating
// here; a vertex instead holds a pointer to its own "first" node and
// neighbor nodes point back to their owning vertex, which is enough to
// splice rings by relinking pointers directly.
type vertex struct {
	p     Point
	index int // assigned after compaction, used by the triangle extractor
	first *node
}

// node is one entry in a vertex's circular neighbor list.
type node struct {
	v          *vertex
	prev, next *node
}

// insert places neighbor into parent's circular adjacency list in CCW
// angular order relative to parent. If parent has no
// neighbors yet, neighbor becomes a singleton ring. If neighbor is
// already present, insert is a no-op. If the insertion point makes
// neighbor the new CCW hull successor of parent, neighbor becomes the
// new "first".
func insert(pr *predicates, parent, neighbor *vertex) {
	n := &node{v: neighbor}

	if parent.first == nil {
		n.prev = n
		n.next = n
		parent.first = n
		return
	}

	first := parent.first
	for cur := first; ; {
		if cur.v == neighbor {
			return // duplicate neighbor, don't insert
		}
		cur = cur.next
		if cur == first {
			break
		}
	}

	if pr.rightOf(neighbor.p, parent.p, first.v.p) {
		cur := first.prev
		for cur != first && pr.rightOf(neighbor.p, parent.p, cur.v.p) {
			cur = cur.prev
		}
		if cur == first {
			// neighbor is the CCW hull successor of parent: it becomes "first"
			insertNodeAfter(cur.prev, n)
			parent.first = n
		} else {
			insertNodeAfter(cur, n)
		}
		return
	}

	cur := first.next
	for cur != first && pr.leftOf(neighbor.p, parent.p, cur.v.p) {
		cur = cur.next
	}
	if cur.v == neighbor {
		return // duplicate neighbor, don't insert
	}
	insertNodeAfter(cur.prev, n)
}

// insertNodeAfter splices in between n and n.next.
func insertNodeAfter(n, in *node) {
	nxt := n.next
	n.next = in
	nxt.prev = in
	in.prev = n
	in.next = nxt
}

// deleteNeighbor removes child from parent's adjacency list. If child
// was "first", its successor is promoted unless the list becomes
// empty.
func deleteNeighbor(parent, child *vertex) {
	n := parent.first
	if n == nil {
		return
	}
	start := n
	for {
		if n.v == child {
			n.prev.next = n.next
			n.next.prev = n.prev
			if n == parent.first {
				if n.next == n {
					parent.first = nil
				} else {
					parent.first = n.next
				}
			}
			return
		}
		n = n.next
		if n == start {
			return
		}
	}
}

// connect adds the symmetric pair of adjacency entries for edge (a,b).
// It is a no-op if a == b or either vertex is nil.
func connect(pr *predicates, a, b *vertex) {
	if a == nil || b == nil || a == b {
		return
	}
	insert(pr, a, b)
	insert(pr, b, a)
}

// cut removes the symmetric pair of adjacency entries for edge (a,b).
func cut(a, b *vertex) {
	if a == nil || b == nil || a == b {
		return
	}
	deleteNeighbor(a, b)
	deleteNeighbor(b, a)
}

// first returns vi's distinguished first neighbor, or nil if vi has no
// neighbors.
func first(vi *vertex) *vertex {
	if vi == nil || vi.first == nil {
		return nil
	}
	return vi.first.v
}

// pred returns the neighbor preceding vj in vi's adjacency list, or
// nil if vj is not adjacent to vi.
func pred(vi, vj *vertex) *vertex {
	if vi == nil || vj == nil || vi.first == nil {
		return nil
	}
	n := vi.first
	start := n
	for {
		if n.v == vj {
			return n.prev.v
		}
		n = n.prev
		if n == start {
			return nil
		}
	}
}

// succ returns the neighbor following vj in vi's adjacency list, or
// nil if vj is not adjacent to vi.
func succ(vi, vj *vertex) *vertex {
	if vi == nil || vj == nil || vi.first == nil {
		return nil
	}
	n := vi.first
	start := n
	for {
		if n.v == vj {
			return n.next.v
		}
		n = n.next
		if n == start {
			return nil
		}
	}
}
