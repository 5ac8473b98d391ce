package Trees

import "fmt"

// bound of a subtree during Check: every value must be >= lo and < hi, when set.
type bound[T any, S any] struct {
	i            S
	lo, hi       T
	hasLo, hasHi bool
}

// Check validates the structure of the tree: the ordering of every node against all its
// ancestors, parent links, the element count and the arena's free list. Iterative, O(size).
// Returns nil for a sound tree. Intended for tests and debugging.
func (u *OrderedTree[T, S]) Check() error {
	if len(u.ifs) == 0 || len(u.ifs) != len(u.vs)+1 {
		return fmt.Errorf("%w: arena has %d nodes and %d values", ErrCorrupt, len(u.ifs), len(u.vs))
	}
	if u.ifs[0] != (info[S]{}) {
		return fmt.Errorf("%w: nil node was written: %+v", ErrCorrupt, u.ifs[0])
	}
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, u.root, u.ifs[u.root].p)
	}
	limit := len(u.ifs) - 1
	var reached int
	if u.root != 0 {
		st := []bound[T, S]{{i: u.root}}
		for len(st) > 0 {
			b := st[len(st)-1]
			st = st[:len(st)-1]
			if reached++; reached > limit {
				return fmt.Errorf("%w: cycle through node %d", ErrCorrupt, b.i)
			}
			cur, v := u.ifs[b.i], u.getV(b.i)
			if b.hasLo && v < b.lo {
				return fmt.Errorf("%w: node %d value %v is less than ancestor %v", ErrOrder, b.i, v, b.lo)
			}
			if b.hasHi && !(v < b.hi) {
				return fmt.Errorf("%w: node %d value %v isn't less than ancestor %v", ErrOrder, b.i, v, b.hi)
			}
			if cur.l != 0 {
				if u.ifs[cur.l].p != b.i {
					return fmt.Errorf("%w: left child %d of %d has parent %d", ErrCorrupt, cur.l, b.i, u.ifs[cur.l].p)
				}
				st = append(st, bound[T, S]{cur.l, b.lo, v, b.hasLo, true})
			}
			if cur.r != 0 {
				if u.ifs[cur.r].p != b.i {
					return fmt.Errorf("%w: right child %d of %d has parent %d", ErrCorrupt, cur.r, b.i, u.ifs[cur.r].p)
				}
				st = append(st, bound[T, S]{cur.r, v, b.hi, true, b.hasHi})
			}
		}
	}
	if S(reached) != u.n {
		return fmt.Errorf("%w: size is %d, %d nodes reachable", ErrCorrupt, u.n, reached)
	}
	var freed int
	for a := u.free; a != 0; a = u.ifs[a].l {
		if freed++; freed > limit {
			return fmt.Errorf("%w: cycle in free list at %d", ErrCorrupt, a)
		}
	}
	if reached+freed != limit {
		return fmt.Errorf("%w: %d reachable and %d free nodes, %d allocated", ErrCorrupt, reached, freed, limit)
	}
	return nil
}

// Corrupt returns whether the tree has corrupt structures. It's Check without the details.
func (u *OrderedTree[T, S]) Corrupt() bool {
	return u.Check() != nil
}
