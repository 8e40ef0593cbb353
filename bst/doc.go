// Package bst - an unbalanced binary search tree mapping unique keys
// to values, with parent pointers so that iteration needs no stack.
//
// Balance is not maintained on insert. Call Tree.Balance to rebuild
// the tree with minimal height from its sorted contents; construction
// from a slice of pairs yields a balanced tree directly.
//
// Note: a tree is not safe for concurrent use, so either access it
// from a single go routine or guard it with a mutex.
//
// Iterators point directly at nodes. Erasing the node an iterator is
// on, or releasing the whole node graph (Clear, Balance, Erase of a
// node with children, CopyFrom, Move), invalidates it; using such an
// iterator panics with ErrStaleIterator instead of reading a dead node.
package bst
