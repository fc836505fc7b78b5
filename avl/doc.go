// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered set kept in an AVL balanced tree with the
// addition of parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Two containers share one structural engine: SearchTree is a plain
// binary search tree, Tree additionally restores the AVL height
// balance after every insert and delete by walking from the edit site
// to the root and rotating where a sub-tree has become two levels
// deeper on one side.
//
// Elements are ordered by a Comparator supplied at construction, or
// by their natural ordering: a Compare method (see Comparable) or a
// string, integer or floating point kind.  Inserting an element equal
// to one already present overwrites it in place.
package avl
