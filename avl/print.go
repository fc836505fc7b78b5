// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, right
// sub-trees above left ones
//
// verbose adds parent, height and balance of each node
// returns the number of levels printed
func (tree *SearchTree[E]) Print(w io.Writer, verbose bool) int {
	return printTree(w, tree.root, "", root, verbose)
}

// internal print - returns the maximum depth of the tree
func printTree[E any](w io.Writer, tree *Node[E], prefix string, br branch, verbose bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, verbose)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if verbose {
		up := interface{}(nil)
		if nil != tree.up {
			up = tree.up.data
		}
		fmt.Fprintf(w, "%v ^%v h:%d %+2d\n", tree.data, up, tree.height, tree.Balance())
	} else {
		fmt.Fprintf(w, "%v\n", tree.data)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, verbose)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
