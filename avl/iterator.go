// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest element
func (tree *SearchTree[E]) First() *Node[E] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[E]) first() *Node[E] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest element
func (tree *SearchTree[E]) Last() *Node[E] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[E]) last() *Node[E] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest element
// or nil if no more nodes.
func (p *Node[E]) Next() *Node[E] {
	if p.right != nil {
		return p.right.first()
	}
	for up := p.up; up != nil; p, up = up, up.up {
		if up.left == p {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest element
// or nil if no more nodes
func (p *Node[E]) Prev() *Node[E] {
	if p.left != nil {
		return p.left.last()
	}
	for up := p.up; up != nil; p, up = up, up.up {
		if up.right == p {
			return up
		}
	}
	return nil
}
