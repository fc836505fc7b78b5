// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// Visitor - called once for every node of a traversal
type Visitor[E any] func(node *Node[E])

// TraversePreorder - visit the sub-tree: node, left, right
func (p *Node[E]) TraversePreorder(visit Visitor[E]) {
	if nil == p {
		return
	}
	visit(p)
	p.left.TraversePreorder(visit)
	p.right.TraversePreorder(visit)
}

// TraversePostorder - visit the sub-tree: left, right, node
func (p *Node[E]) TraversePostorder(visit Visitor[E]) {
	if nil == p {
		return
	}
	p.left.TraversePostorder(visit)
	p.right.TraversePostorder(visit)
	visit(p)
}

// TraverseInorder - visit the sub-tree: left, node, right
func (p *Node[E]) TraverseInorder(visit Visitor[E]) {
	if nil == p {
		return
	}
	p.left.TraverseInorder(visit)
	visit(p)
	p.right.TraverseInorder(visit)
}

// WriteNested - write the sub-tree in order as nested parentheses
//
// each node is written as "(" left element right ")", where an absent
// child writes nothing, e.g. a root 20 with children 10 and 30 is
// written as ((10)20(30))
func (p *Node[E]) WriteNested(w io.Writer) error {
	if nil == p {
		return nil
	}
	if _, err := io.WriteString(w, "("); nil != err {
		return err
	}
	if err := p.left.WriteNested(w); nil != err {
		return err
	}
	if _, err := fmt.Fprint(w, p.data); nil != err {
		return err
	}
	if err := p.right.WriteNested(w); nil != err {
		return err
	}
	_, err := io.WriteString(w, ")")
	return err
}

// Nested - the WriteNested rendering as a string
func (p *Node[E]) Nested() string {
	var s strings.Builder
	_ = p.WriteNested(&s) // a strings.Builder never fails
	return s.String()
}
