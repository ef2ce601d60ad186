// This file is part of go-args.
//
// Copyright (C) 2016-2024  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - usage text rendering.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/mattforni/go-args/internal/option"
	"github.com/mattforni/go-args/text"
)

// Padding -
var Padding = 4

// Width - Column at which synopsis lines wrap and descriptions are folded.
var Width = 80

// Name - Returns the name section given the program name and description.
func Name(program, description string) string {
	out := program
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// Synopsis - Returns a one block synopsis listing every option, required
// options first and unbracketed, the rest in square brackets. Lines wrap at
// Width and align under the program name.
func Synopsis(program string, schemas []*option.Schema) string {
	scriptName := strings.Repeat(" ", Padding) + program
	required, optional := option.Split(schemas)
	var out string
	line := scriptName
	for _, s := range append(required, optional...) {
		syn := s.Synopsis()
		if s.Occur != option.Required {
			syn = "[" + syn + "]"
		}
		if len(line)+len(syn) > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// OptionList - Returns the required parameters and options sections.
// Descriptions fold to Width and align after the longest synopsis, optional
// options show their default when they have one.
func OptionList(schemas []*option.Schema) string {
	factor := 0
	for _, s := range schemas {
		if l := len(s.Synopsis()); l > factor {
			factor = l
		}
	}
	factor += Padding
	helpString := func(s *option.Schema) string {
		txt := fmt.Sprintf("%s%s", strings.Repeat(" ", Padding), pad(s.Synopsis(), factor))
		if s.Description != "" {
			width := Width - Padding - factor
			if width < 20 {
				width = 20
			}
			description := wordwrap.WrapString(s.Description, uint(width))
			description = strings.ReplaceAll(description, "\n", "\n"+strings.Repeat(" ", Padding+factor))
			txt += description
		}
		if s.Occur != option.Required && s.DefaultStr != "" {
			txt += fmt.Sprintf(" (default: %s)", s.DefaultStr)
		}
		txt += "\n"
		return txt
	}
	required, optional := option.Split(schemas)
	out := ""
	if len(required) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpRequiredOptionsHeader)
		for _, s := range required {
			out += helpString(s)
		}
	}
	if len(optional) > 0 {
		if out != "" {
			out += "\n"
		}
		out += fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
		for _, s := range optional {
			out += helpString(s)
		}
	}
	return out
}

// pad - Given a string and a padding factor it will return the string padded
// with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
