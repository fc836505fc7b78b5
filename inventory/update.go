// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inventory

import (
	"strings"

	"github.com/bitmark-inc/inventory/fault"
)

// Action - what an update does to its key
type Action int

// possible actions
const (
	ActionAdd    Action = iota
	ActionDelete Action = iota
)

// String - name of the action
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Update - one parsed line of an update file
type Update struct {
	Action Action
	Key    string
}

// ParseLine - split a line into action and key
//
// returns false for a blank line; only the first character of the
// action is significant and tokens after the key are ignored
func ParseLine(line string) (Update, bool, error) {
	tokens := strings.Fields(line)
	if 0 == len(tokens) {
		return Update{}, false, nil
	}

	var action Action
	switch tokens[0][0] {
	case 'a', 'A':
		action = ActionAdd
	case 'd', 'D':
		action = ActionDelete
	default:
		return Update{}, false, fault.ErrInvalidAction
	}

	if len(tokens) < 2 {
		return Update{}, false, fault.ErrMissingKey
	}

	return Update{
		Action: action,
		Key:    tokens[1],
	}, true, nil
}
