// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inventory_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inventory/fault"
	"github.com/bitmark-inc/inventory/inventory"
	"github.com/bitmark-inc/inventory/inventory/mocks"
)

func TestNewProcessorErrors(t *testing.T) {
	set, _ := inventory.NewSet([]string{"avl"}, "")

	_, err := inventory.NewProcessor(nil, set, false)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	_, err = inventory.NewProcessor(logger.New(category), nil, false)
	assert.Equal(t, fault.ErrNoTrees, err, "empty set")
}

func TestProcessDispatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	gomock.InOrder(
		m.EXPECT().Add("k1").Return(nil).Times(1),
		m.EXPECT().Remove("k2").Return(nil).Times(1),
		m.EXPECT().Add("k3").Return(nil).Times(1),
	)

	set := inventory.Set{{Name: "MOCK", Store: m}}
	p, err := inventory.NewProcessor(logger.New(category), set, false)
	assert.Nil(t, err, "new processor")

	err = p.Process(strings.NewReader("a k1\nD k2\n\nbad line\nd\nA k3"))
	assert.Nil(t, err, "process")

	assert.Equal(t, inventory.Summary{Lines: 6, Applied: 3, Skipped: 2}, p.Summary(), "summary")
}

func TestProcessStrict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Add("k1").Return(nil).Times(1)
	m.EXPECT().Add("k2").Times(0)

	set := inventory.Set{{Name: "MOCK", Store: m}}
	p, _ := inventory.NewProcessor(logger.New(category), set, true)

	err := p.Process(strings.NewReader("a k1\nz k9\na k2\n"))
	assert.Equal(t, fault.ErrInvalidAction, err, "strict error")
	assert.Equal(t, inventory.Summary{Lines: 2, Applied: 1, Skipped: 1}, p.Summary(), "summary")
}

func TestProcessStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Add("k1").Return(fault.ErrIncomparable).Times(2)

	set := inventory.Set{{Name: "MOCK", Store: m}}

	lenient, _ := inventory.NewProcessor(logger.New(category), set, false)
	assert.Nil(t, lenient.Line("a k1"), "lenient")
	assert.Equal(t, uint64(1), lenient.Summary().Skipped, "lenient skipped")

	strict, _ := inventory.NewProcessor(logger.New(category), set, true)
	assert.Equal(t, fault.ErrIncomparable, strict.Line("a k1"), "strict")
}

func TestProcessRealTrees(t *testing.T) {
	set, _ := inventory.NewSet([]string{"bst", "avl"}, inventory.OrderNatural)
	p, _ := inventory.NewProcessor(logger.New(category), set, false)

	err := p.Process(strings.NewReader("a 1\na 2\na 3\na 4\nd 9\na 2\n"))
	assert.Nil(t, err, "process")
	assert.Equal(t, set, p.Set(), "set")

	bst := set[0].Store
	avl := set[1].Store
	assert.Equal(t, 4, bst.Count(), "bst count")
	assert.Equal(t, 3, bst.Height(), "bst height")
	assert.Equal(t, 4, avl.Count(), "avl count")
	assert.Equal(t, 2, avl.Height(), "avl height")
	assert.Equal(t, 4, avl.Updates(), "avl updates")
	assert.Nil(t, inventory.Check(set), "check")
}
