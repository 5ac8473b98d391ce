package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// OrderedTree is an unbalanced binary search tree holding a multiset of T.
// Values in a node's left subtree are strictly less than the node's value; values in its
// right subtree are greater or equal, so duplicates are routed right and never rejected.
// No rebalancing is ever done, the height of the tree depends only on the order of
// insertions and removals and can be as large as Size().
// Nodes live in an arena indexed by S. S must be wide enough to index every node that is
// alive at the same time, otherwise the tree is corrupt.
// T mustn't hold NaN floats, they break the ordering.
// The zero value isn't usable, create it with New. It's not safe for concurrent use.
type OrderedTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
	n S // number of reachable nodes
}

// New returns an empty tree with room for hint nodes before the arena grows.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{base: makeBase[T, S](hint)}
}

// Size of the tree. O(1).
func (u *OrderedTree[T, S]) Size() S {
	return u.n
}

// find the first node holding v along the search path. Returns 0 if there's none.
func (u *OrderedTree[T, S]) find(v T) S {
	curI := u.root
	for curI != 0 && u.getV(curI) != v {
		if v < u.getV(curI) {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return curI
}

// Contains v. O(height).
func (u *OrderedTree[T, S]) Contains(v T) bool {
	return u.find(v) != 0
}

// Count the occurrences of v. O(height): below the first match, equal values can only
// be found by walking right through equal nodes and left through greater ones.
func (u *OrderedTree[T, S]) Count(v T) (c S) {
	for curI := u.find(v); curI != 0; {
		if cv := u.getV(curI); v < cv {
			curI = u.ifs[curI].l
		} else {
			if cv == v {
				c++
			}
			curI = u.ifs[curI].r
		}
	}
	return
}

// Add v as a new leaf. Duplicates are added to the right of existing equal values. O(height).
func (u *OrderedTree[T, S]) Add(v T) {
	// alloc may move the arena, so the descent is done with indexes only.
	ni := u.alloc(v)
	var p S
	left := false
	for curI := u.root; curI != 0; {
		p = curI
		if left = v < u.getV(curI); left {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	u.ifs[ni].p = p
	if p == 0 {
		u.root = ni
	} else if left {
		u.ifs[p].l = ni
	} else {
		u.ifs[p].r = ni
	}
	u.n++
	u.assert()
}

// Erase one occurrence of v, whichever is met first along the search path. Returns false,
// leaving the tree untouched, if v isn't in the tree. O(height).
func (u *OrderedTree[T, S]) Erase(v T) bool {
	ti := u.find(v)
	if ti == 0 {
		return false
	}
	if t := u.ifs[ti]; t.l == 0 {
		u.replace(ti, t.r)
	} else if t.r == 0 {
		u.replace(ti, t.l)
	} else {
		si := u.leftmost(t.r) // in-order successor, it has no left child.
		if u.ifs[si].p != ti {
			u.replace(si, u.ifs[si].r)
			u.ifs[si].r = t.r
			u.ifs[t.r].p = si
		}
		u.replace(ti, si)
		u.ifs[si].l = t.l
		u.ifs[t.l].p = si
	}
	u.addFree(ti)
	u.n--
	u.assert()
	return true
}

// Minimum element of the tree.
func (u *OrderedTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.getV(u.leftmost(u.root)), true
}

// Maximum element of the tree.
func (u *OrderedTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.getV(u.rightmost(u.root)), true
}

// Clear the tree. Every node is released at once without visiting them; the arena keeps its capacity.
func (u *OrderedTree[T, S]) Clear() {
	u.clrIfs()
	u.n = 0
}

// assert the invariants after a mutation. Only active with the bstdebug build tag.
func (u *OrderedTree[T, S]) assert() {
	if debug {
		if err := u.Check(); err != nil {
			panic(err)
		}
	}
}
