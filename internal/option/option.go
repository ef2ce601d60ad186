// This file is part of go-args.
//
// Copyright (C) 2016-2024  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option schema and typed value containers.
package option

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"time"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Kind - Indicates the scalar type an option stores.
type Kind int

// Option value kinds
const (
	BoolKind Kind = iota
	IntKind
	Int64Kind
	UintKind
	Uint64Kind
	Float64Kind
	StringKind
	DurationKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case Int64Kind:
		return "int64"
	case UintKind:
		return "uint"
	case Uint64Kind:
		return "uint64"
	case Float64Kind:
		return "float64"
	case StringKind:
		return "string"
	case DurationKind:
		return "duration"
	}
	return "unknown"
}

// Occur - Indicates how many times an option may be given on the command line.
type Occur int

// Option occurrences
const (
	// Optional - at most once.
	Optional Occur = iota
	// Required - exactly once.
	Required
	// Multiple - any number of times.
	Multiple
)

// Value - A scalar tagged with its kind.
//
// The data always holds exactly the Go type the kind names. A Value is only
// built through Make or Coerce so the tag and the dynamic type can't drift.
type Value struct {
	kind Kind
	data interface{}
}

// Make - Returns a Value holding data under the given kind.
// The caller guarantees data is the Go type the kind names.
func Make(kind Kind, data interface{}) Value {
	return Value{kind: kind, data: data}
}

// Kind - Returns the kind tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface - Get untyped option value.
func (v Value) Interface() interface{} {
	return v.data
}

// Display - Returns the value formatted for help output.
func (v Value) Display() string {
	switch v.kind {
	case StringKind:
		return fmt.Sprintf("%q", v.data)
	case Float64Kind:
		return fmt.Sprintf("%f", v.data)
	default:
		return fmt.Sprintf("%v", v.data)
	}
}

// Coerce - Converts a raw argument into a Value of the given kind.
func Coerce(kind Kind, raw string) (Value, error) {
	Logger.Printf("coerce %q to %s\n", raw, kind)
	switch kind {
	case BoolKind:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return Make(BoolKind, b), nil
	case IntKind:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, err
		}
		return Make(IntKind, i), nil
	case Int64Kind:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Make(Int64Kind, i), nil
	case UintKind:
		u, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return Value{}, err
		}
		return Make(UintKind, uint(u)), nil
	case Uint64Kind:
		u, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Make(Uint64Kind, u), nil
	case Float64Kind:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, err
		}
		return Make(Float64Kind, f), nil
	case StringKind:
		return Make(StringKind, raw), nil
	case DurationKind:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Value{}, err
		}
		return Make(DurationKind, d), nil
	}
	return Value{}, fmt.Errorf("unknown kind %d", kind)
}

// Schema - Declaration of a single option.
type Schema struct {
	Short       string // single letter name, e.g. "i"
	Long        string // canonical name, e.g. "iter"
	Description string // description used for help
	Hint        string // arg name used for help, empty for flags
	Kind        Kind
	Occur       Occur
	HasArg      bool // false only for flags

	Default    *Value // nil when the option has no default
	DefaultStr string // string representation of the default value
}

// SetDefault - Stores the default value.
// An option with a default can't be required, so the occurrence drops to Optional.
func (s *Schema) SetDefault(v Value) *Schema {
	s.Default = &v
	s.DefaultStr = v.Display()
	s.Occur = Optional
	return s
}

// Synopsis - Returns the option's synopsis form, e.g. "-i|--iter <TIMES>".
func (s *Schema) Synopsis() string {
	syn := fmt.Sprintf("-%s|--%s", s.Short, s.Long)
	if s.HasArg {
		syn += fmt.Sprintf(" <%s>", s.Hint)
	}
	if s.Occur == Multiple {
		syn += "..."
	}
	return syn
}

// Sort Interface
func Sort(list []*Schema) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Long < list[j].Long
	})
}

// Split - Separates required options from the rest, each sorted by long name.
func Split(list []*Schema) (required, optional []*Schema) {
	for _, s := range list {
		if s.Occur == Required {
			required = append(required, s)
		} else {
			optional = append(optional, s)
		}
	}
	Sort(required)
	Sort(optional)
	return required, optional
}
