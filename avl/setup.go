// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// SearchTree - type to hold the root node of an unbalanced binary
// search tree; also the structural engine used by Tree
type SearchTree[E any] struct {
	root    *Node[E]
	count   int
	updates int
	compare ordering[E]
}

// NewSearchTree - create an initially empty, unbalanced tree
//
// a nil compare selects the natural ordering of E
func NewSearchTree[E any](compare Comparator[E]) *SearchTree[E] {
	return &SearchTree[E]{
		root:    nil,
		count:   0,
		updates: 0,
		compare: orderingFor(compare),
	}
}

// IsEmpty - true if tree contains no data
func (tree *SearchTree[E]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *SearchTree[E]) Count() int {
	return tree.count
}

// Updates - number of structural inserts plus deletes so far;
// overwrites and deletes of absent elements are not counted
func (tree *SearchTree[E]) Updates() int {
	return tree.updates
}

// Root - return the root node of the tree
func (tree *SearchTree[E]) Root() *Node[E] {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *SearchTree[E]) Height() int {
	return tree.root.Height()
}

// internal: make node the root, unlinking it from any parent
func (tree *SearchTree[E]) setRoot(node *Node[E]) {
	if nil != node {
		node.Detach()
	}
	tree.root = node
}
