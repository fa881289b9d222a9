// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBrokenBackReference    = InvariantError("child does not point back to its parent")
	ErrCheckFailed            = ProcessError("tree check failed")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrCycleDetected          = InvariantError("node reachable more than once")
	ErrInvalidKey             = InvalidError("key is not a signed 32 bit integer")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrMissingArgument        = InvalidError("missing command argument")
	ErrMissingConfigFile      = NotFoundError("config file is not found")
	ErrMissingKey             = InvariantError("structural node has no key")
	ErrNilNode                = InvalidError("node is nil")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrOrderViolation         = InvariantError("key is out of order")
	ErrRootHasParent          = InvariantError("root node has a parent")
	ErrStaleParent            = InvariantError("parent does not own child")
	ErrTreeCountMismatch      = InvariantError("tree count does not match nodes")
	ErrUnknownCommandArgument = InvalidError("unknown command argument")
)

// the error interface methods
func (e GenericError) Error() string   { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool    { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrInvariant(e error) bool { var t InvariantError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
