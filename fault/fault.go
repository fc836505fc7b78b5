// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ComparisonError GenericError
type CycleError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCycle                = CycleError("node cannot become a descendant of itself")
	ErrFileRemoved          = NotFoundError("update file was removed")
	ErrIncomparable         = ComparisonError("elements have no common ordering")
	ErrInvalidAction        = InvalidError("update action is not add or delete")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvariantBroken      = ProcessError("tree invariant check failed")
	ErrMissingKey           = InvalidError("update line has no key")
	ErrNoConfigurationTable = InvalidError("configuration did not return a table")
	ErrNoTrees              = InvalidError("no trees configured")
	ErrUnknownOrdering      = NotFoundError("unknown ordering")
	ErrUnknownTreeKind      = NotFoundError("unknown tree kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ComparisonError) Error() string { return string(e) }
func (e CycleError) Error() string      { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrComparison(e error) bool { _, ok := e.(ComparisonError); return ok }
func IsErrCycle(e error) bool      { _, ok := e.(CycleError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
