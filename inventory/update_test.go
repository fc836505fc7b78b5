// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inventory/fault"
	"github.com/bitmark-inc/inventory/inventory"
)

func TestParseLine(t *testing.T) {
	items := []struct {
		line   string
		update inventory.Update
		ok     bool
		err    error
	}{
		{"a apple", inventory.Update{Action: inventory.ActionAdd, Key: "apple"}, true, nil},
		{"A Apple", inventory.Update{Action: inventory.ActionAdd, Key: "Apple"}, true, nil},
		{"add pear extra tokens", inventory.Update{Action: inventory.ActionAdd, Key: "pear"}, true, nil},
		{"d apple", inventory.Update{Action: inventory.ActionDelete, Key: "apple"}, true, nil},
		{"D  \t kiwi  ", inventory.Update{Action: inventory.ActionDelete, Key: "kiwi"}, true, nil},
		{"delete fig", inventory.Update{Action: inventory.ActionDelete, Key: "fig"}, true, nil},
		{"", inventory.Update{}, false, nil},
		{"   \t ", inventory.Update{}, false, nil},
		{"x apple", inventory.Update{}, false, fault.ErrInvalidAction},
		{"apple", inventory.Update{Action: inventory.ActionAdd, Key: ""}, false, fault.ErrMissingKey},
		{"d", inventory.Update{}, false, fault.ErrMissingKey},
	}

	for i, item := range items {
		update, ok, err := inventory.ParseLine(item.line)
		assert.Equal(t, item.err, err, "%d: error for: %q", i, item.line)
		assert.Equal(t, item.ok, ok, "%d: ok for: %q", i, item.line)
		if nil == err {
			assert.Equal(t, item.update, update, "%d: update for: %q", i, item.line)
		}
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "add", inventory.ActionAdd.String(), "add")
	assert.Equal(t, "delete", inventory.ActionDelete.String(), "delete")
	assert.Equal(t, "unknown", inventory.Action(99).String(), "unknown")
}
