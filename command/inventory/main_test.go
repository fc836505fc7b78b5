// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inventory/inventory"
)

// poll until the processor has seen n lines
func waitForLines(processor *inventory.Processor, n uint64) bool {
	for i := 0; i < 500; i += 1 {
		if processor.Summary().Lines >= n {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestFollowUntilRemoved(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "updates.txt")
	err := os.WriteFile(fileName, []byte("a 10\na 20\n"), 0600)
	assert.Nil(t, err, "create file")

	file, err := os.Open(fileName)
	assert.Nil(t, err, "open")
	defer file.Close()

	set, _ := inventory.NewSet([]string{"bst", "avl"}, inventory.OrderNatural)
	processor, _ := inventory.NewProcessor(logger.New("test"), set, false)

	done := make(chan error, 1)
	go func() {
		done <- follow(file, fileName, processor, logger.New("test"))
	}()

	assert.True(t, waitForLines(processor, 2), "initial pass")

	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY, 0600)
	assert.Nil(t, err, "open for append")
	_, _ = f.WriteString("a 30\nd 10\n")
	f.Close()

	assert.True(t, waitForLines(processor, 4), "appended lines")

	assert.Nil(t, os.Remove(fileName), "remove")

	select {
	case err := <-done:
		assert.Nil(t, err, "follow error")
	case <-time.After(5 * time.Second):
		t.Fatal("follow did not return after removal")
	}

	assert.Equal(t, inventory.Summary{Lines: 4, Applied: 4, Skipped: 0}, processor.Summary(), "summary")
	for _, e := range set {
		assert.Equal(t, 2, e.Store.Count(), "%s count", e.Name)
		ok, _ := e.Store.Contains("30")
		assert.True(t, ok, "%s contains 30", e.Name)
	}
	assert.Nil(t, inventory.Check(set), "check")
}
