// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - a height balanced search tree
//
// every query of SearchTree is available unchanged, only Add and
// Remove differ: after each structural change the path from the edit
// site to the root is walked and rotations restore
// -1 <= Balance() <= 1 at every node
type Tree[E any] struct {
	SearchTree[E]
}

// New - create an initially empty balanced tree
//
// a nil compare selects the natural ordering of E
func New[E any](compare Comparator[E]) *Tree[E] {
	return &Tree[E]{
		SearchTree: SearchTree[E]{
			compare: orderingFor(compare),
		},
	}
}

// Add - insert a new element into the tree, an element comparing
// equal to one already present replaces it
func (tree *Tree[E]) Add(data E) error {
	n, err := tree.insert(data)
	if nil != err {
		return err
	}
	if nil != n {
		tree.rebalance(n.up)
	}
	return nil
}

// Remove - removes the element equal to data from the tree, nothing
// happens if there is no such element
func (tree *Tree[E]) Remove(data E) error {
	node, err := tree.Search(data)
	if nil != err || nil == node {
		return err
	}

	// the node physically spliced out is the predecessor when there
	// are two children; its parent is the lowest changed node
	start := node.up
	if nil != node.left && nil != node.right {
		start = node.predecessor().up
	}

	tree.removeNode(node)
	tree.rebalance(start)
	return nil
}

// internal: restore balance from p up to the root
func (tree *Tree[E]) rebalance(p *Node[E]) {
	for ; nil != p; p = p.up {
		switch p.Balance() {
		case 2:
			// a zero balanced child only occurs after a removal, a
			// single rotation is the one that keeps both sides in range
			if p.left.Balance() >= 0 {
				tree.rotateRight(p)
			} else {
				tree.rotateLeft(p.left)
				tree.rotateRight(p)
			}
		case -2:
			if p.right.Balance() <= 0 {
				tree.rotateLeft(p)
			} else {
				tree.rotateRight(p.right)
				tree.rotateLeft(p)
			}
		}
	}
}
