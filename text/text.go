// This file is part of go-args.
//
// Copyright (C) 2016-2024  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Kept in a single place so wording can be reviewed or overridden in one pass.
package text

// ErrorParsingScope - Prefix applied to malformed command line errors.
var ErrorParsingScope = "parse: "

// ErrorMissingRequired - Error message for a required option that was not given.
var ErrorMissingRequired = "Missing required parameter '%s'"

// ErrorNotPresent - Error message when an option has no stored value.
var ErrorNotPresent = "%s: does not have a value"

// ErrorInvalidValue - Error message when a raw argument can't be converted to the declared type.
var ErrorInvalidValue = "%s: unable to parse '%s' as %s"

// ErrorIncorrectType - Error message when a value is requested as a type other than the declared one.
var ErrorIncorrectType = "%s: holds %s, not %s"

// ErrorValidation - Error message listing every failed validation for an option.
var ErrorValidation = "%s: %s"

// Command line grammar errors reported while tokenizing.
var ErrorUnrecognizedOption = "Unrecognized option: '%s'"
var ErrorOptionDuplicated = "Option '%s' given more than once"
var ErrorUnexpectedArgument = "Option '%s' does not take an argument"
var ErrorArgumentMissing = "Argument to option '%s' missing"

// ErrorSuggestion - Appended to unrecognized option errors when a close match exists.
var ErrorSuggestion = ". Did you mean '--%s'?"

// Help output section headers.
var HelpNameHeader = "NAME"
var HelpSynopsisHeader = "SYNOPSIS"
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"
var HelpOptionsHeader = "OPTIONS"
