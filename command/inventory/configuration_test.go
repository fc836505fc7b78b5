// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inventory/fault"
)

func writeConfiguration(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "inventory.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	assert.Nil(t, err, "write configuration")
	return fileName
}

func TestConfigurationDefaults(t *testing.T) {
	wd, _ := os.Getwd()
	logPath := filepath.Join(wd, defaultLogDirectory)
	_, statErr := os.Stat(logPath)
	defer func() {
		if os.IsNotExist(statErr) {
			_ = os.RemoveAll(logPath)
		}
	}()

	c, err := getConfiguration("")
	assert.Nil(t, err, "defaults")

	assert.Equal(t, wd, c.DataDirectory, "data directory")
	assert.Equal(t, "natural", c.Ordering, "ordering")
	assert.Equal(t, []string{"bst", "avl"}, c.Trees, "trees")
	assert.False(t, c.Strict, "strict")
	assert.Equal(t, logPath, c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "default level")
}

func TestConfigurationFile(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    ordering = "Fold",
    trees = { "avl" },
    strict = true,
    check = true,
    graph = true,
    logging = {
        directory = "logs",
        file = "test.log",
        size = 2048,
        count = 3,
        levels = {
            inventory = "debug",
        },
    },
}
`)
	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "parse")

	directory := filepath.Dir(fileName)
	assert.Equal(t, directory, c.DataDirectory, "data directory")
	assert.Equal(t, "fold", c.Ordering, "ordering")
	assert.Equal(t, []string{"avl"}, c.Trees, "trees do not merge with defaults")
	assert.True(t, c.Strict, "strict")
	assert.True(t, c.Check, "check")
	assert.True(t, c.Graph, "graph")
	assert.Equal(t, filepath.Join(directory, "logs"), c.Logging.Directory, "log directory")
	assert.Equal(t, 2048, c.Logging.Size, "log size")
	assert.Equal(t, "debug", c.Logging.Levels["inventory"], "configured level")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "default level kept")

	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")

	// defaults are not modified by a parse
	assert.Equal(t, 1, len(defaultLogLevels), "default levels changed")
}

func TestConfigurationErrors(t *testing.T) {
	items := []struct {
		content string
		check   func(error) bool
	}{
		{`return { ordering = "random" }`, func(err error) bool { return fault.ErrUnknownOrdering == err }},
		{`return { data_directory = "" }`, func(err error) bool { return nil != err }},
		{`return { data_directory = "/does/not/exist/here" }`, os.IsNotExist},
		{`return { logging = { file = "sub/x.log" } }`, func(err error) bool { return nil != err }},
		{`return 42`, func(err error) bool { return fault.ErrNoConfigurationTable == err }},
	}

	for i, item := range items {
		_, err := getConfiguration(writeConfiguration(t, item.content))
		assert.True(t, item.check(err), "%d: unexpected error: %v", i, err)
	}
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", ensureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", ensureAbsolute("/data", "/var/log/"), "absolute")
}
