// This file is part of go-args.
//
// Copyright (C) 2016-2025  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package getopt - low level command line tokenizer.
//
// It knows nothing about types, defaults or requiredness. Given a grammar of
// option specs it walks the raw tokens once and either returns the recorded
// occurrences or the first grammar failure.
package getopt

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/mattforni/go-args/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Spec - Grammar for a single option.
type Spec struct {
	Name   string // canonical name, matched as --name
	Alias  string // short name, matched as -alias
	HasArg bool   // the option takes an argument
	Multi  bool   // the option may be given more than once
}

// FailKind - Classifies a grammar failure.
type FailKind int

// Grammar failures
const (
	UnrecognizedOption FailKind = iota
	OptionDuplicated
	UnexpectedArgument
	ArgumentMissing
)

// Fail - A command line that does not conform to the given grammar.
type Fail struct {
	Kind       FailKind
	Name       string // option name as given, without dashes
	Suggestion string // close registered name, only for UnrecognizedOption
}

func (f *Fail) Error() string {
	switch f.Kind {
	case UnrecognizedOption:
		msg := fmt.Sprintf(text.ErrorUnrecognizedOption, f.Name)
		if f.Suggestion != "" {
			msg += fmt.Sprintf(text.ErrorSuggestion, f.Suggestion)
		}
		return msg
	case OptionDuplicated:
		return fmt.Sprintf(text.ErrorOptionDuplicated, f.Name)
	case UnexpectedArgument:
		return fmt.Sprintf(text.ErrorUnexpectedArgument, f.Name)
	default: // ArgumentMissing
		return fmt.Sprintf(text.ErrorArgumentMissing, f.Name)
	}
}

// Matches - The occurrences recorded during a single walk of the tokens.
type Matches struct {
	values map[string][]string // canonical name -> arguments, in order given
	counts map[string]int      // canonical name -> times seen
	free   []string            // tokens that are not options
}

// Present - Indicates if the option was given at least once.
func (m *Matches) Present(name string) bool {
	return m.counts[name] > 0
}

// Count - Times the option was given.
func (m *Matches) Count(name string) int {
	return m.counts[name]
}

// First - Returns the first argument given to the option.
func (m *Matches) First(name string) (string, bool) {
	values := m.values[name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// All - Returns every argument given to the option, in order.
func (m *Matches) All(name string) []string {
	return m.values[name]
}

// Free - Returns the tokens that were not consumed by options, in order.
func (m *Matches) Free() []string {
	return m.free
}

// 1: leading dashes
// 2: option
// 3: =arg
var isOptionRegex = regexp.MustCompile(`^(--?)([^=]+)(.*?)$`)

type optionPair struct {
	Option string
	Arg    string
	HasArg bool // Arg was attached with '='
}

// isOption - Check if the given string is an option (starts with - or --).
// Returns the option without the starting dashes and its attached argument if
// the string contained one. The lone dash '-' is not an option, it is left as
// a free token for callers that read from stdin.
func isOption(s string) (optionPair, bool) {
	if s == "-" || s == "--" {
		return optionPair{}, false
	}
	match := isOptionRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		return optionPair{}, false
	}
	pair := optionPair{Option: match[2]}
	if strings.HasPrefix(match[3], "=") {
		pair.Arg = strings.TrimPrefix(match[3], "=")
		pair.HasArg = true
	}
	return pair, true
}

// lookup resolves a token's option name against the grammar by name or alias.
func lookup(specs []Spec, name string) *Spec {
	for i := range specs {
		if specs[i].Name == name || specs[i].Alias == name {
			return &specs[i]
		}
	}
	return nil
}

// suggestion - Returns a registered name close to the given one, or "".
func suggestion(specs []Spec, given string) string {
	for _, spec := range specs {
		if levenshtein.Distance(given, spec.Name, nil) < 3 {
			return spec.Name
		}
	}
	return ""
}

// Parse - Walks the tokens against the grammar.
//
// Arguments attach with '--name=arg' or follow as the next token. A detached
// token is only consumed as an argument when it is not itself an option, so
// '--iter --help' reports a missing argument instead of storing '--help'.
// Everything after a bare '--' is free text.
func Parse(specs []Spec, args []string) (*Matches, error) {
	m := &Matches{
		values: map[string][]string{},
		counts: map[string]int{},
		free:   []string{},
	}
	for i := 0; i < len(args); i++ {
		token := args[i]
		Logger.Printf("token: %s\n", token)
		if token == "--" {
			m.free = append(m.free, args[i+1:]...)
			break
		}
		pair, is := isOption(token)
		if !is {
			m.free = append(m.free, token)
			continue
		}
		spec := lookup(specs, pair.Option)
		if spec == nil {
			return nil, &Fail{Kind: UnrecognizedOption, Name: pair.Option, Suggestion: suggestion(specs, pair.Option)}
		}
		name := spec.Name
		if !spec.Multi && m.counts[name] > 0 {
			return nil, &Fail{Kind: OptionDuplicated, Name: name}
		}
		if !spec.HasArg {
			if pair.HasArg {
				return nil, &Fail{Kind: UnexpectedArgument, Name: name}
			}
			m.counts[name]++
			continue
		}
		arg := pair.Arg
		if !pair.HasArg {
			if i+1 >= len(args) {
				return nil, &Fail{Kind: ArgumentMissing, Name: name}
			}
			if _, nextIsOption := isOption(args[i+1]); nextIsOption {
				return nil, &Fail{Kind: ArgumentMissing, Name: name}
			}
			i++
			arg = args[i]
		}
		m.counts[name]++
		m.values[name] = append(m.values[name], arg)
	}
	Logger.Printf("matches: %v, free: %v\n", m.values, m.free)
	return m, nil
}
