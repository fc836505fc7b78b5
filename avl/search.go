// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding the element equal to key, nil if
// there is none
func (tree *SearchTree[E]) Search(key E) (*Node[E], error) {
	p := tree.root
	for nil != p {
		c, err := tree.compare(key, p.data)
		if nil != err {
			return nil, err
		}
		switch {
		case c < 0: // key < p.data
			p = p.left
		case c > 0: // key > p.data
			p = p.right
		default:
			return p, nil
		}
	}
	return nil, nil
}

// Contains - true if an element equal to key is in the tree
func (tree *SearchTree[E]) Contains(key E) (bool, error) {
	node, err := tree.Search(key)
	if nil != err {
		return false, err
	}
	return nil != node, nil
}
