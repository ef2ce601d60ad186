// This file is part of go-args.
//
// Copyright (C) 2016-2025  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package args

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/mattforni/go-args/internal/option"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Separator joins the raw occurrences of a Multiple option before conversion.
const Separator = ","

// Occur - Indicates how many times an option may be given on the command line.
type Occur int

// Option occurrences
const (
	// Required - The option must be given exactly once.
	Required Occur = iota
	// Optional - The option may be given at most once.
	Optional
	// Multiple - The option may be given any number of times.
	Multiple
)

func (o Occur) internal() option.Occur {
	switch o {
	case Required:
		return option.Required
	case Multiple:
		return option.Multiple
	default:
		return option.Optional
	}
}

// Scalar - The closed set of types an option can store.
type Scalar interface {
	bool | int | int64 | uint | uint64 | float64 | string | time.Duration
}

// kindOf - Maps a scalar type parameter to its kind tag.
func kindOf[T Scalar]() option.Kind {
	var zero T
	switch interface{}(zero).(type) {
	case bool:
		return option.BoolKind
	case int:
		return option.IntKind
	case int64:
		return option.Int64Kind
	case uint:
		return option.UintKind
	case uint64:
		return option.Uint64Kind
	case float64:
		return option.Float64Kind
	case time.Duration:
		return option.DurationKind
	default: // string
		return option.StringKind
	}
}

// Args - Holds the declared options and the values of the last parse.
//
// Declare options with Flag and Option, then call Parse (or ParseFromCLI or
// ParseLine) and read values back with ValueOf and friends. An Args is not
// safe for concurrent use, callers that share one serialize around it.
type Args struct {
	program     string
	description string

	schemas map[string]*option.Schema // keyed by long name
	aliases map[string]string         // short and long name -> long name
	names   []string                  // long names in registration order

	values    map[string]option.Value // values of the last successful parse
	remaining []string                // non option tokens of the last successful parse
}

// New - Returns an empty option registry for the given program.
// The description shows up in the usage output.
func New(program, description string) *Args {
	return &Args{
		program:     program,
		description: description,
		schemas:     make(map[string]*option.Schema),
		aliases:     make(map[string]string),
		values:      make(map[string]option.Value),
	}
}

// Flag - Declares a boolean option that is true when given on the command
// line and false otherwise. Flags always have a value after a parse.
func (a *Args) Flag(short, long, description string) *Args {
	a.register(&option.Schema{
		Short:       short,
		Long:        long,
		Description: description,
		Kind:        option.BoolKind,
		Occur:       option.Optional,
		DefaultStr:  "false",
	})
	return a
}

// Option - Declares an option that takes an argument of type T. The hint
// names the argument in usage output, e.g. "TIMES". At most one default may
// be given, and an option with a default can't be required, so its
// occurrence drops to Optional.
//
// Option is a function instead of a method so it can be generic over the
// stored type.
func Option[T Scalar](a *Args, short, long, description, hint string, occur Occur, def ...T) *Args {
	if len(def) > 1 {
		panic(fmt.Sprintf("Option '%s' allows at most one default value", long))
	}
	s := &option.Schema{
		Short:       short,
		Long:        long,
		Description: description,
		Hint:        hint,
		Kind:        kindOf[T](),
		Occur:       occur.internal(),
		HasArg:      true,
	}
	if len(def) == 1 {
		s.SetDefault(option.Make(s.Kind, def[0]))
	}
	a.register(s)
	return a
}

// register stores the schema under its long name and indexes both names.
// Registration mistakes are programmer errors and panic right away.
func (a *Args) register(s *option.Schema) {
	if s.Short == "" || s.Long == "" {
		panic(fmt.Sprintf("Option '%s' requires both a short and a long name", s.Short+s.Long))
	}
	for _, key := range []string{s.Short, s.Long} {
		if long, ok := a.aliases[key]; ok {
			panic(fmt.Sprintf("Option/Alias '%s' is already defined in option '%s'", key, long))
		}
	}
	Logger.Printf("registered '%s' (-%s) as %s\n", s.Long, s.Short, s.Kind)
	a.aliases[s.Short] = s.Long
	a.aliases[s.Long] = s.Long
	a.schemas[s.Long] = s
	a.names = append(a.names, s.Long)
}

// schemaList - Returns the schemas in registration order.
func (a *Args) schemaList() []*option.Schema {
	list := make([]*option.Schema, 0, len(a.names))
	for _, name := range a.names {
		list = append(list, a.schemas[name])
	}
	return list
}
