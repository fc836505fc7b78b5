// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new element into the tree, an element comparing
// equal to one already present replaces it
func (tree *SearchTree[E]) Add(data E) error {
	_, err := tree.insert(data)
	return err
}

// internal routine for insert
// returns the new leaf, or nil if an existing element was overwritten
func (tree *SearchTree[E]) insert(data E) (*Node[E], error) {
	if nil == tree.root {
		tree.root = NewNode(data)
		tree.added()
		return tree.root, nil
	}

	p := tree.root
	for {
		c, err := tree.compare(data, p.data)
		if nil != err {
			return nil, err
		}
		switch {
		case c < 0: // data < p.data
			if nil == p.left {
				n := NewNode(data)
				p.mustSetChild(&p.left, n)
				tree.added()
				return n, nil
			}
			p = p.left
		case c > 0: // data > p.data
			if nil == p.right {
				n := NewNode(data)
				p.mustSetChild(&p.right, n)
				tree.added()
				return n, nil
			}
			p = p.right
		default:
			p.data = data
			return nil, nil
		}
	}
}

func (tree *SearchTree[E]) added() {
	tree.count += 1
	tree.updates += 1
}
