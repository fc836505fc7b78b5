// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the up pointers for consistency
func (tree *SearchTree[E]) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		return false
	}
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[E any](p *Node[E], up *Node[E]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckOrder - true if an in-order walk is strictly increasing
func (tree *SearchTree[E]) CheckOrder() bool {
	for p := tree.First(); nil != p; p = p.Next() {
		n := p.Next()
		if nil == n {
			break
		}
		c, err := tree.compare(p.data, n.data)
		if nil != err || c >= 0 {
			return false
		}
	}
	return true
}

// CheckHeights - true if every cached height matches the sub-tree
func (tree *SearchTree[E]) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights[E any](p *Node[E]) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(lh, rh)
	return h, h == p.height
}

// CheckBalance - true if every node has a balance of -1, 0 or +1
func (tree *SearchTree[E]) CheckBalance() bool {
	ok := true
	tree.root.TraversePreorder(func(p *Node[E]) {
		if b := p.Balance(); b < -1 || b > 1 {
			ok = false
		}
	})
	return ok
}

// CheckCount - true if the node count agrees with the structure
func (tree *SearchTree[E]) CheckCount() bool {
	n := 0
	tree.root.TraversePostorder(func(*Node[E]) {
		n += 1
	})
	return n == tree.count
}
