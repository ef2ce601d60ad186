// This file is part of go-args.
//
// Copyright (C) 2016-2025  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattforni/go-args/text"
)

// Sentinel errors used to classify failures with errors.Is.
// The concrete error types below carry the details.

// ErrorParsing - Indicates that the command line did not conform to the
// declared options.
var ErrorParsing = errors.New("")

// ErrorMissingRequired - Indicates that a required option was not given.
var ErrorMissingRequired = errors.New("")

// ErrorInvalidValue - Indicates that a raw argument could not be converted to
// the option's declared type.
var ErrorInvalidValue = errors.New("")

// ErrorNotPresent - Indicates that an option has no stored value.
var ErrorNotPresent = errors.New("")

// ErrorIncorrectType - Indicates that a value was requested as a type other
// than the one it was declared with.
var ErrorIncorrectType = errors.New("")

// ErrorValidation - Indicates that one or more validations failed for a value.
var ErrorValidation = errors.New("")

// SyntaxError - The command line could not be tokenized against the declared
// options. Err holds the underlying grammar failure.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return text.ErrorParsingScope + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return ErrorParsing
}

// MissingRequiredError - A required option was not given on the command line.
type MissingRequiredError struct {
	Name string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf(text.ErrorMissingRequired, e.Name)
}

func (e *MissingRequiredError) Unwrap() error {
	return ErrorMissingRequired
}

// InvalidValueError - A raw argument could not be converted to the declared
// scalar kind, e.g. --iter abc for an int option.
type InvalidValueError struct {
	Name  string
	Value string // raw argument as given
	Kind  string // declared kind, e.g. "int"
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf(text.ErrorInvalidValue, e.Name, e.Value, e.Kind)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrorInvalidValue
}

// NotPresentError - The option has no stored value, either because the name
// was never registered or because an optional option was not given.
type NotPresentError struct {
	Name string
}

func (e *NotPresentError) Error() string {
	return fmt.Sprintf(text.ErrorNotPresent, e.Name)
}

func (e *NotPresentError) Unwrap() error {
	return ErrorNotPresent
}

// IncorrectTypeError - The stored value was requested as a different type.
// Values never convert on read, the requested type has to match the declared
// one exactly.
type IncorrectTypeError struct {
	Name      string
	Stored    string // declared kind, e.g. "string"
	Requested string // kind asked for, e.g. "int"
}

func (e *IncorrectTypeError) Error() string {
	return fmt.Sprintf(text.ErrorIncorrectType, e.Name, e.Stored, e.Requested)
}

func (e *IncorrectTypeError) Unwrap() error {
	return ErrorIncorrectType
}

// ValidationError - One or more validations failed for a value. Failures
// holds the description of every rule that failed, in the order the rules
// were given.
type ValidationError struct {
	Name     string
	Failures []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(text.ErrorValidation, e.Name, strings.Join(e.Failures, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrorValidation
}
