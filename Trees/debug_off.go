//go:build !bstdebug

package Trees

const debug = false
