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
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBalanceViolation        = InvalidError("balance factor out of range")
	ErrConfigurationFileAbsent = NotFoundError("configuration file does not exist")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrEmptyTree               = NotFoundError("tree is empty")
	ErrExpectationFailed       = ProcessError("scenario result does not match expectation")
	ErrHeightMismatch          = InvalidError("stored height is incorrect")
	ErrInvalidDataDirectory    = InvalidError("invalid data directory")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrOrderViolation          = InvalidError("keys are not in strictly increasing order")
	ErrScenarioNameDuplicated  = ExistsError("scenario name is duplicated")
	ErrScenarioNameRequired    = InvalidError("scenario name is required")
	ErrScenarioNotFound        = NotFoundError("scenario not found")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { var x ExistsError; return errors.As(e, &x) }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { var x InvalidError; return errors.As(e, &x) }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { var x ProcessError; return errors.As(e, &x) }
