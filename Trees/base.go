package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the tree. l and r are the owned children, p is the parent. All three
// are indexes into the arena, 0 being nil. A free slot uses l as the next free index.
// The zero value is a detached leaf.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

// base is the node arena. ifs[0] is the nil node and is never written.
type base[T any, S constraints.Unsigned] struct {
	root, free S         // free is the beginning of the linked list that contains all the free indexes.
	ifs        []info[S] // all index is based on ifs. len(ifs)=len(vs)+1
	vs         []T       // vs[i] corresponds to ifs[i+1].
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 0, hint)}
}

func (u *base[T, S]) getV(i S) T {
	return u.vs[i-1]
}

// addFree index once. The slot's links are cleared, so nothing re-parented away from it stays reachable through it.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a-1] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a detached leaf holding v. Free slots are filled first before appending to the underlying arrays.
func (u *base[T, S]) alloc(v T) (i S) {
	if i = u.popFree(); i == 0 {
		i = S(len(u.ifs))
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
	} else {
		u.ifs[i] = info[S]{}
		u.vs[i-1] = v
	}
	return
}

// replace the subtree at o, in o's parent slot or as root, with the subtree at n.
// n is re-parented; o's own links are left untouched.
func (u *base[T, S]) replace(o, n S) {
	p := u.ifs[o].p
	if p == 0 {
		u.root = n
	} else if u.ifs[p].l == o {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	if n != 0 {
		u.ifs[n].p = p
	}
}

func (u *base[T, S]) leftmost(curI S) S {
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return curI
}

func (u *base[T, S]) rightmost(curI S) S {
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return curI
}

// clrIfs drops every node. Values are zeroed so the arena doesn't pin them.
func (u *base[T, S]) clrIfs() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free = 0, 0
}
