// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inventory

import (
	"bufio"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/inventory/fault"
)

// Follower - feeds lines appended to an update file to a processor
//
// runs as a background process, each signal on changes reads all
// complete lines now available; a signal on removed, or shutdown,
// ends following
type Follower struct {
	log       *logger.L
	processor *Processor
	reader    *bufio.Reader
	partial   string
	changes   <-chan struct{}
	removed   <-chan struct{}
	done      chan struct{}
	removal   bool
	err       error
}

// NewFollower - create a follower reading from r
func NewFollower(log *logger.L, processor *Processor, r io.Reader, changes <-chan struct{}, removed <-chan struct{}) (*Follower, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Follower{
		log:       log,
		processor: processor,
		reader:    bufio.NewReader(r),
		changes:   changes,
		removed:   removed,
		done:      make(chan struct{}),
	}, nil
}

// Drain - process every complete line that can be read now
//
// text after the last newline is kept until the rest of its line
// arrives
func (f *Follower) Drain() error {
	for {
		s, err := f.reader.ReadString('\n')
		if io.EOF == err {
			f.partial += s
			return nil
		}
		if nil != err {
			return err
		}
		line := strings.TrimSuffix(f.partial+s[:len(s)-1], "\r")
		f.partial = ""
		if err := f.processor.Line(line); nil != err {
			return err
		}
	}
}

// Flush - process any incomplete final line
func (f *Follower) Flush() error {
	if "" == f.partial {
		return nil
	}
	line := strings.TrimSuffix(f.partial, "\r")
	f.partial = ""
	return f.processor.Line(line)
}

// Done - closed when Run has returned
func (f *Follower) Done() <-chan struct{} {
	return f.done
}

// Err - the error that stopped following, only valid after Done
//
// removal of the update file gives fault.ErrFileRemoved
func (f *Follower) Err() error {
	return f.err
}

// Run - background process loop
func (f *Follower) Run(args interface{}, shutdown <-chan struct{}) {
	defer close(f.done)

	f.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-f.changes:
			if err := f.Drain(); nil != err {
				f.log.Errorf("drain error: %s", err)
				f.err = err
				return
			}
		case <-f.removed:
			f.log.Warn("update file removed, stop following")
			f.removal = true
			break loop
		}
	}

	// anything written before the stop still counts
	if err := f.Drain(); nil != err {
		f.err = err
	} else if err := f.Flush(); nil != err {
		f.err = err
	} else if f.removal {
		f.err = fault.ErrFileRemoved
	}
	f.log.Infof("stopped, summary: %+v", f.processor.Summary())
}
