// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inventory

import (
	"bufio"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/inventory/counter"
	"github.com/bitmark-inc/inventory/fault"
)

// Summary - totals of the lines seen so far
type Summary struct {
	Lines   uint64 // every line read, including blank ones
	Applied uint64 // updates applied to all stores
	Skipped uint64 // malformed or rejected lines
}

// Processor - applies update lines to a set of stores
type Processor struct {
	log    *logger.L
	set    Set
	strict bool

	lines   counter.Counter
	applied counter.Counter
	skipped counter.Counter
}

// NewProcessor - create a processor for a set of stores
//
// in strict mode the first bad line stops processing, otherwise bad
// lines are logged and skipped
func NewProcessor(log *logger.L, set Set, strict bool) (*Processor, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if 0 == len(set) {
		return nil, fault.ErrNoTrees
	}
	return &Processor{
		log:    log,
		set:    set,
		strict: strict,
	}, nil
}

// Set - the stores being updated
func (p *Processor) Set() Set {
	return p.set
}

// Line - parse and apply a single line
func (p *Processor) Line(line string) error {
	n := p.lines.Increment()

	u, ok, err := ParseLine(line)
	if nil != err {
		return p.reject(n, line, err)
	}
	if !ok {
		return nil
	}

	if err := p.set.Apply(u); nil != err {
		return p.reject(n, line, err)
	}

	p.applied.Increment()
	p.log.Debugf("line: %d  %s: %q", n, u.Action, u.Key)
	return nil
}

func (p *Processor) reject(n uint64, line string, err error) error {
	p.skipped.Increment()
	p.log.Warnf("line: %d  %q  error: %s", n, line, err)
	if p.strict {
		return err
	}
	return nil
}

// Process - apply every line from a reader
func (p *Processor) Process(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := p.Line(scanner.Text()); nil != err {
			return err
		}
	}
	return scanner.Err()
}

// Summary - current totals
func (p *Processor) Summary() Summary {
	return Summary{
		Lines:   p.lines.Uint64(),
		Applied: p.applied.Uint64(),
		Skipped: p.skipped.Uint64(),
	}
}
