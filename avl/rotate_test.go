// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateLeftAtRoot(t *testing.T) {
	tree := NewSearchTree[int](nil)
	for _, v := range []int{2, 1, 4, 3, 5} {
		_ = tree.Add(v)
	}

	tree.rotateLeft(tree.root)

	assert.Equal(t, "(((1)2(3))4(5))", tree.root.Nested(), "shape")
	assert.Nil(t, tree.root.up, "root parent")
	assert.True(t, tree.CheckUp(), "links")
	assert.True(t, tree.CheckHeights(), "heights")
	assert.Equal(t, 5, tree.Count(), "rotation changed count")
	assert.Equal(t, 5, tree.Updates(), "rotation counted as update")
}

func TestRotateRightInside(t *testing.T) {
	tree := NewSearchTree[int](nil)
	for _, v := range []int{1, 5, 3, 7, 2, 4} {
		_ = tree.Add(v)
	}
	pivot, _ := tree.Search(5)

	tree.rotateRight(pivot)

	assert.Equal(t, "(1((2)3((4)5(7))))", tree.root.Nested(), "shape")
	assert.Equal(t, tree.root, pivot.up.up, "pivot parent")
	assert.True(t, tree.CheckUp(), "links")
	assert.True(t, tree.CheckHeights(), "heights")
}

func TestRotateWithoutChild(t *testing.T) {
	tree := NewSearchTree[int](nil)
	for _, v := range []int{2, 1} {
		_ = tree.Add(v)
	}
	before := tree.root.Nested()

	tree.rotateLeft(tree.root)
	assert.Equal(t, before, tree.root.Nested(), "rotate left without right child")

	tree.rotateRight(tree.root.left)
	assert.Equal(t, before, tree.root.Nested(), "rotate right without left child")
}

func TestPredecessor(t *testing.T) {
	tree := NewSearchTree[int](nil)
	for _, v := range []int{50, 30, 70, 20, 40, 35} {
		_ = tree.Add(v)
	}
	assert.Equal(t, 40, tree.root.predecessor().data, "root predecessor")
	n, _ := tree.Search(40)
	assert.Equal(t, 35, n.predecessor().data, "inner predecessor")
}

func TestMustSetChildPanics(t *testing.T) {
	p := NewNode(1)
	q := NewNode(2)
	_ = p.SetLeft(q)
	assert.Panics(t, func() {
		q.mustSetChild(&q.left, p)
	}, "cycle must panic")
}
