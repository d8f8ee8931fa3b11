// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCountMismatch        = RecordError("node count does not match tree")
	ErrCursorAtEnd          = InvalidError("cursor is at end")
	ErrHeightBelowDepth     = RecordError("height is below node depth")
	ErrInvalidIterations    = InvalidError("iterations must be positive")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidReadToo       = InvalidError("read too must be 0 or 1")
	ErrInvalidStringLength  = LengthError("string length must be positive")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = RecordError("keys are not in ascending order")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNotATable            = InvalidError("configuration did not return a table")
	ErrNotFound             = NotFoundError("not found")
	ErrParentLink           = RecordError("parent link is inconsistent")
	ErrPatchFailed          = ProcessError("patch of existing key failed")
	ErrProbeKeyNotFound     = NotFoundError("probe key not found")
	ErrProbeValueMismatch   = RecordError("probe value does not match")
	ErrScriptSyntax         = InvalidError("script syntax error")
	ErrTooManyArguments     = InvalidError("too many arguments")
	ErrUnknownBaseline      = NotFoundError("unknown baseline map")
	ErrUnknownOperation     = NotFoundError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
