//go:build bstdebug

package Trees

// debug makes every mutation validate the whole tree and panic on corruption. O(size) per call.
const debug = true
