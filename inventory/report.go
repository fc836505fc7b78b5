// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inventory

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/inventory/fault"
)

// Report - write the update count of the first store then the size,
// height and nested rendering of every store
func Report(w io.Writer, set Set) error {
	if 0 == len(set) {
		return fault.ErrNoTrees
	}

	if _, err := fmt.Fprintf(w, "Number of inventory updates: %d\n\n", set[0].Store.Updates()); nil != err {
		return err
	}

	for _, e := range set {
		_, err := fmt.Fprintf(w, "%s tree size: %d, height: %d\n", e.Name, e.Store.Count(), e.Store.Height())
		if nil != err {
			return err
		}
		if err := e.Store.Root().WriteNested(w); nil != err {
			return err
		}
		if _, err := io.WriteString(w, "\n"); nil != err {
			return err
		}
	}
	return nil
}

// Check - verify the structure of every store that supports it
func Check(set Set) error {
	for _, e := range set {
		c, ok := e.Store.(checker)
		if !ok {
			continue
		}
		if !c.CheckUp() || !c.CheckOrder() || !c.CheckHeights() || !c.CheckCount() {
			return fault.ErrInvariantBroken
		}
		if e.Balanced && !c.CheckBalance() {
			return fault.ErrInvariantBroken
		}
	}
	return nil
}

// Graph - write the ASCII graphic of every store that can print one
func Graph(w io.Writer, set Set) error {
	for _, e := range set {
		g, ok := e.Store.(interface {
			Print(io.Writer, bool) int
		})
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s tree:\n", e.Name); nil != err {
			return err
		}
		g.Print(w, false)
	}
	return nil
}
