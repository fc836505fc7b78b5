// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/inventory/background"
	"github.com/bitmark-inc/inventory/fault"
	"github.com/bitmark-inc/inventory/inventory"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "follow", HasArg: getoptions.NO_ARGUMENT, Short: 'f'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "graph", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--follow] [--check] [--graph] inventory-file\n"+
			"  inventory-file  file containing inventory updates", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	set, err := inventory.NewSet(masterConfiguration.Trees, masterConfiguration.Ordering)
	if nil != err {
		exitwithstatus.Message("%s: trees: %v  error: %s", program, masterConfiguration.Trees, err)
	}

	processor, err := inventory.NewProcessor(logger.New("inventory"), set, masterConfiguration.Strict)
	if nil != err {
		exitwithstatus.Message("%s: processor setup failed with error: %s", program, err)
	}

	inventoryFile := arguments[0]
	file, err := os.Open(inventoryFile)
	if nil != err {
		log.Errorf("open: %q  error: %s", inventoryFile, err)
		exitwithstatus.Message("Error in opening inventory file")
	}
	defer file.Close()

	if len(options["follow"]) > 0 {
		err = follow(file, inventoryFile, processor, log)
	} else {
		err = processor.Process(file)
	}
	if nil != err {
		log.Errorf("process: %q  error: %s", inventoryFile, err)
		exitwithstatus.Message("%s: processing: %q  error: %s", program, inventoryFile, err)
	}

	log.Infof("summary: %+v", processor.Summary())

	if len(options["check"]) > 0 || masterConfiguration.Check {
		if err := inventory.Check(set); nil != err {
			fault.Criticalf("tree check failed: %s", err)
			exitwithstatus.Message("%s: check failed: %s", program, err)
		}
		log.Info("tree check passed")
	}

	if err := inventory.Report(os.Stdout, set); nil != err {
		exitwithstatus.Message("%s: report error: %s", program, err)
	}

	if len(options["graph"]) > 0 || masterConfiguration.Graph {
		if err := inventory.Graph(os.Stdout, set); nil != err {
			exitwithstatus.Message("%s: graph error: %s", program, err)
		}
	}
}

// process the file then keep applying appended lines until the file
// is removed or a signal is received
func follow(file *os.File, fileName string, processor *inventory.Processor, log *logger.L) error {

	watcherChannel := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(fileName, logger.New(FileWatcherLoggerPrefix), watcherChannel)
	if nil != err {
		return err
	}

	follower, err := inventory.NewFollower(logger.New("follower"), processor, file, watcherChannel.change, watcherChannel.remove)
	if nil != err {
		return err
	}

	// watch first so that nothing appended during the initial pass
	// is missed
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	if err := follower.Drain(); nil != err {
		return err
	}

	processes := background.Start(background.Processes{follower}, nil)

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
	case <-follower.Done():
		log.Info("follower finished")
	}

	processes.Stop()

	err = follower.Err()
	if fault.ErrFileRemoved == err {
		log.Infof("%s removed, following ended", fileName)
		return nil
	}
	return err
}
