// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"

	"github.com/bitmark-inc/inventory/fault"
)

// Comparator - ordering function: negative if a < b, zero if a == b
// and positive if a > b
type Comparator[E any] func(a E, b E) int

// Comparable - an element type that can order itself, used when no
// comparator is given
type Comparable[E any] interface {
	Compare(E) int // for left/right ordering of items
}

// internal form of a comparison, natural ordering can fail
type ordering[E any] func(a E, b E) (int, error)

func orderingFor[E any](compare Comparator[E]) ordering[E] {
	if nil == compare {
		return naturalCompare[E]
	}
	return func(a E, b E) (int, error) {
		return compare(a, b), nil
	}
}

// natural ordering of elements
func naturalCompare[E any](a E, b E) (int, error) {
	if c, ok := any(a).(Comparable[E]); ok {
		return c.Compare(b), nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return 0, fault.ErrIncomparable
	}

	switch va.Kind() {
	case reflect.String:
		return cmp.Compare(va.String(), vb.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float()), nil
	}
	return 0, fault.ErrIncomparable
}
