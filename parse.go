// This file is part of go-args.
//
// Copyright (C) 2016-2025  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package args

import (
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/mattforni/go-args/internal/getopt"
	"github.com/mattforni/go-args/internal/option"
)

// Parse - Processes the given command line tokens against the declared
// options and stores the resolved values.
//
// Every declared option resolves in registration order: flags store presence,
// given arguments are converted to the declared type, absent options fall
// back to their default, and absent required options fail. A Multiple option
// stores its occurrences joined with Separator before conversion.
//
// The stored values only change when the whole parse succeeds. On any error
// the values of the previous parse remain readable.
func (a *Args) Parse(args []string) error {
	Logger.Printf("parsing args for '%s': %v\n", a.program, args)

	specs := make([]getopt.Spec, 0, len(a.names))
	for _, name := range a.names {
		s := a.schemas[name]
		specs = append(specs, getopt.Spec{
			Name:   s.Long,
			Alias:  s.Short,
			HasArg: s.HasArg,
			Multi:  s.Occur == option.Multiple,
		})
	}
	matches, err := getopt.Parse(specs, args)
	if err != nil {
		return &SyntaxError{Err: err}
	}

	values := make(map[string]option.Value, len(a.names))
	for _, name := range a.names {
		s := a.schemas[name]
		if !s.HasArg {
			values[name] = option.Make(option.BoolKind, matches.Present(name))
			continue
		}
		if matches.Present(name) {
			raw, _ := matches.First(name)
			if s.Occur == option.Multiple {
				raw = strings.Join(matches.All(name), Separator)
			}
			v, err := option.Coerce(s.Kind, raw)
			if err != nil {
				return &InvalidValueError{Name: name, Value: raw, Kind: s.Kind.String()}
			}
			values[name] = v
			continue
		}
		if s.Default != nil {
			values[name] = *s.Default
			continue
		}
		if s.Occur == option.Required {
			return &MissingRequiredError{Name: name}
		}
		// Optional without a default stays unset.
	}

	a.values = values
	a.remaining = matches.Free()
	Logger.Printf("parsed %d values, %d remaining\n", len(values), len(a.remaining))
	return nil
}

// ParseFromCLI - Parses the arguments of the running program, skipping the
// program name.
func (a *Args) ParseFromCLI() error {
	return a.Parse(os.Args[1:])
}

// ParseLine - Splits a single command line string the way a shell would and
// parses the resulting tokens. Useful when the arguments arrive as one
// string, e.g. from a config entry.
func (a *Args) ParseLine(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return &SyntaxError{Err: err}
	}
	return a.Parse(words)
}

// Remaining - Returns the tokens the last successful parse did not consume,
// in the order they were given. Tokens after a bare "--" land here verbatim.
func (a *Args) Remaining() []string {
	return a.remaining
}
