// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes the element equal to data from the tree, nothing
// happens if there is no such element
func (tree *SearchTree[E]) Remove(data E) error {
	node, err := tree.Search(data)
	if nil != err || nil == node {
		return err
	}
	tree.removeNode(node)
	return nil
}

// internal delete routine, node must be in this tree
func (tree *SearchTree[E]) removeNode(node *Node[E]) {

	// a node with two children stays; it takes over the element of
	// its predecessor, which has at most one child and is removed
	// in its place
	if nil != node.left && nil != node.right {
		predecessor := node.predecessor()
		node.data = predecessor.data
		node = predecessor
	}

	pullUp := node.left
	if nil == pullUp {
		pullUp = node.right
	}

	up := node.up
	switch {
	case nil == up:
		tree.setRoot(pullUp)
	case up.left == node:
		up.mustSetChild(&up.left, pullUp)
	default:
		up.mustSetChild(&up.right, pullUp)
	}

	tree.count -= 1
	tree.updates += 1
}
