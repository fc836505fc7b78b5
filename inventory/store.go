// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inventory

import (
	"strings"

	"github.com/bitmark-inc/inventory/avl"
	"github.com/bitmark-inc/inventory/fault"
)

// tree kinds
const (
	KindBST = "bst"
	KindAVL = "avl"
)

// key orderings
const (
	OrderNatural = "natural"
	OrderFold    = "fold"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/inventory/inventory Store

// Store - the operations needed from a tree of keys
type Store interface {
	Add(key string) error
	Remove(key string) error
	Contains(key string) (bool, error)
	Count() int
	Height() int
	Updates() int
	Root() *avl.Node[string]
}

// structural checks provided by both tree types
type checker interface {
	CheckUp() bool
	CheckOrder() bool
	CheckHeights() bool
	CheckCount() bool
	CheckBalance() bool
}

// Entry - a named store
type Entry struct {
	Name     string
	Balanced bool
	Store    Store
}

// Set - stores that all receive the same updates, in order
type Set []Entry

// NewStore - create an empty store of the given kind
func NewStore(kind string, ordering string) (Store, error) {
	compare, err := comparator(ordering)
	if nil != err {
		return nil, err
	}

	switch strings.ToLower(kind) {
	case KindBST:
		return avl.NewSearchTree[string](compare), nil
	case KindAVL:
		return avl.New[string](compare), nil
	default:
		return nil, fault.ErrUnknownTreeKind
	}
}

// NewSet - create one store for each kind
func NewSet(kinds []string, ordering string) (Set, error) {
	if 0 == len(kinds) {
		return nil, fault.ErrNoTrees
	}

	set := make(Set, 0, len(kinds))
	for _, kind := range kinds {
		store, err := NewStore(kind, ordering)
		if nil != err {
			return nil, err
		}
		set = append(set, Entry{
			Name:     strings.ToUpper(kind),
			Balanced: KindAVL == strings.ToLower(kind),
			Store:    store,
		})
	}
	return set, nil
}

// Apply - perform an update on every store
func (s Set) Apply(u Update) error {
	for _, e := range s {
		var err error
		switch u.Action {
		case ActionAdd:
			err = e.Store.Add(u.Key)
		case ActionDelete:
			err = e.Store.Remove(u.Key)
		default:
			err = fault.ErrInvalidAction
		}
		if nil != err {
			return err
		}
	}
	return nil
}

// nil selects the natural byte-wise order of strings
func comparator(ordering string) (avl.Comparator[string], error) {
	switch strings.ToLower(ordering) {
	case "", OrderNatural:
		return nil, nil
	case OrderFold:
		return foldCompare, nil
	default:
		return nil, fault.ErrUnknownOrdering
	}
}

// case insensitive, equal folded keys are the same key
func foldCompare(a string, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
