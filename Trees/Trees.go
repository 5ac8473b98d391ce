package Trees

import (
	"golang.org/x/exp/constraints"
	"iter"
)

// Tree represents an ordered multiset implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), where x
// is the zero value of T and shouldn't be used.
// No receiver fails: asking for something that isn't there is a no-op
// or a false result. Functions are implemented iteratively.
type Tree[T any, S constraints.Unsigned] interface {
	//Add v to the Tree. Equal values are all kept.
	Add(v T)
	//Erase one occurrence of v from the Tree. Returning true if one was removed,
	//false if v isn't in the Tree. Which of the equal values is removed
	//depends on the implementation.
	Erase(v T) bool
	//Contains element v.
	Contains(v T) bool
	//Count of the occurrences of v.
	Count(v T) S
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree, counting duplicates.
	Size() S
	//ToSortedArray returns all elements in ascending order, one entry per occurrence.
	ToSortedArray() []T
	//All returns the elements in ascending order as a sequence. The tree
	//must not be modified while the sequence is iterated.
	All() iter.Seq[T]
	//Clear the tree. It remains usable.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the links between nodes don't agree.
	Corrupt() bool
}

var _ Tree[int, uint] = (*OrderedTree[int, uint])(nil)
