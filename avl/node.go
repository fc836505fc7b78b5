// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/inventory/fault"
)

// Node - a node in the tree
//
// forward links (left, right) own the children; up is only a back
// link and always agrees with them
type Node[E any] struct {
	left   *Node[E] // left sub-tree
	right  *Node[E] // right sub-tree
	up     *Node[E] // points to parent node
	data   E        // element, also the ordering key
	height int      // 0 for a leaf
}

// NewNode - create a node that is the root of its own one node tree
func NewNode[E any](data E) *Node[E] {
	return &Node[E]{
		data:   data,
		height: 0,
	}
}

// Data - read the element from a node
func (p *Node[E]) Data() E {
	return p.data
}

// SetData - replace the element, does not change the structure
func (p *Node[E]) SetData(data E) {
	p.data = data
}

// Parent - return parent node of a node
func (p *Node[E]) Parent() *Node[E] {
	return p.up
}

// Left - return the left child or nil
func (p *Node[E]) Left() *Node[E] {
	return p.left
}

// Right - return the right child or nil
func (p *Node[E]) Right() *Node[E] {
	return p.right
}

// Height - height of the sub-tree rooted at this node, -1 for nil
func (p *Node[E]) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Balance - height(left) - height(right)
func (p *Node[E]) Balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// SetLeft - move child (and its sub-tree) into the left slot
//
// any node already in the slot is unlinked and becomes the root of
// its own tree.  Fails with fault.ErrCycle, before changing anything,
// if child is this node or one of its ancestors.
func (p *Node[E]) SetLeft(child *Node[E]) error {
	return p.setChild(&p.left, child)
}

// SetRight - move child (and its sub-tree) into the right slot
//
// same rules as SetLeft
func (p *Node[E]) SetRight(child *Node[E]) error {
	return p.setChild(&p.right, child)
}

// Detach - unlink this node from its parent, if any
func (p *Node[E]) Detach() {
	up := p.up
	if nil == up {
		return
	}
	if up.left == p {
		up.left = nil
	} else if up.right == p {
		up.right = nil
	}
	p.up = nil
	up.fixHeights()
}

// IsRoot - true if the node has no parent
func (p *Node[E]) IsRoot() bool {
	return nil == p.up
}

// IsLeaf - true if the node has no children
func (p *Node[E]) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// Depth - get the depth of a node
func (p *Node[E]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all nodes at a specific depth below
// this node
func (p *Node[E]) GetChildrenByDepth(depth uint) []*Node[E] {
	if depth == 0 {
		return []*Node[E]{p}
	}
	nodes := []*Node[E]{}
	if p.left != nil {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

// internal: relink child into one of the slots of p
func (p *Node[E]) setChild(slot **Node[E], child *Node[E]) error {
	for n := p; nil != n; n = n.up {
		if n == child {
			return fault.ErrCycle
		}
	}

	// detaching first leaves every cached height valid, so only the
	// path above p needs fixing afterwards
	if nil != child {
		child.Detach()
	}
	if old := *slot; nil != old {
		old.up = nil
	}
	*slot = child
	if nil != child {
		child.up = p
	}
	p.fixHeights()
	return nil
}

// internal: relink where the shape is already known to be acyclic
func (p *Node[E]) mustSetChild(slot **Node[E], child *Node[E]) {
	if err := p.setChild(slot, child); nil != err {
		panic("avl: tree corrupt: " + err.Error())
	}
}

// internal: recompute cached heights towards the root, stopping at
// the first node whose height did not change
func (p *Node[E]) fixHeights() {
	for n := p; nil != n; n = n.up {
		h := 1 + max(n.left.Height(), n.right.Height())
		if h == n.height {
			return
		}
		n.height = h
	}
}

// internal: rightmost node of the left sub-tree
func (p *Node[E]) predecessor() *Node[E] {
	return p.left.last()
}
