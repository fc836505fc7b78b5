// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: single left rotation about p
//
//	  p                r
//	 / \              / \
//	a   r     ->     p   c
//	   / \          / \
//	  b   c        a   b
//
// nothing happens if p has no right child
func (tree *SearchTree[E]) rotateLeft(p *Node[E]) {
	r := p.right
	if nil == r {
		return
	}
	p.mustSetChild(&p.right, r.left)
	tree.replace(p, r)
	r.mustSetChild(&r.left, p)
}

// internal: single right rotation about p, mirror of rotateLeft
//
// nothing happens if p has no left child
func (tree *SearchTree[E]) rotateRight(p *Node[E]) {
	l := p.left
	if nil == l {
		return
	}
	p.mustSetChild(&p.left, l.right)
	tree.replace(p, l)
	l.mustSetChild(&l.right, p)
}

// internal: put q into the slot that p occupies (or the root)
func (tree *SearchTree[E]) replace(p *Node[E], q *Node[E]) {
	up := p.up
	switch {
	case nil == up:
		tree.setRoot(q)
	case up.left == p:
		up.mustSetChild(&up.left, q)
	default:
		up.mustSetChild(&up.right, q)
	}
}
