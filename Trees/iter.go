package Trees

import "iter"

// InOrder traversal of the tree in ascending order, stops when f returns false. Uses st as the stack,
// which is returned for reuse; st can be nil. Duplicates are visited once per occurrence.
// The tree mustn't be modified while f runs.
func (u *OrderedTree[T, S]) InOrder(f func(T) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(u.getV(curI)) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// InOrderR is InOrder in descending order.
func (u *OrderedTree[T, S]) InOrderR(f func(T) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].r {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(u.getV(curI)) {
			break
		}
		for curI = u.ifs[curI].l; curI != 0; curI = u.ifs[curI].r {
			st = append(st, curI)
		}
	}
	return st
}

// All values in ascending order. Every call of the returned sequence walks the tree again.
func (u *OrderedTree[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.InOrder(yield, nil)
	}
}

// Backward is All in descending order.
func (u *OrderedTree[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.InOrderR(yield, nil)
	}
}

// ToSortedArray returns every value of the tree in ascending order. Never nil.
func (u *OrderedTree[T, S]) ToSortedArray() []T {
	vs := make([]T, 0, u.n)
	u.InOrder(func(v T) bool {
		vs = append(vs, v)
		return true
	}, nil)
	return vs
}
