package Trees

import "errors"

var (
	// ErrCorrupt signals that the tree's structure violates its invariants.
	ErrCorrupt = errors.New("trees: corrupt tree")
	// ErrOrder signals a value placed on the wrong side of an ancestor.
	ErrOrder = errors.New("trees: ordering violated")
)
