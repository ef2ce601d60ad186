// This file is part of go-args.
//
// Copyright (C) 2016-2024  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package args

import (
	"testing"
)

func setupUsage() *Args {
	a := New("iterate", "Print a greeting a fixed number of times")
	a.Flag("h", "help", "Print the usage menu")
	Option[int](a, "i", "iter", "The number of times to iterate", "TIMES", Required)
	Option[string](a, "l", "log_file", "The log file location", "PATH", Optional, "output.log")
	return a
}

func TestShortUsage(t *testing.T) {
	a := setupUsage()
	expected := `SYNOPSIS:
    iterate -i|--iter <TIMES> [-h|--help] [-l|--log_file <PATH>]
`
	got := a.ShortUsage()
	if got != expected {
		t.Errorf("wrong short usage:\n%s", firstDiff(got, expected))
	}
}

func TestUsage(t *testing.T) {
	a := setupUsage()
	expected := `NAME:
    iterate - How to iterate

REQUIRED PARAMETERS:
    -i|--iter <TIMES>       The number of times to iterate

OPTIONS:
    -h|--help               Print the usage menu (default: false)
    -l|--log_file <PATH>    The log file location (default: "output.log")
`
	got := a.Usage("How to iterate")
	if got != expected {
		t.Errorf("wrong usage:\n%s", firstDiff(got, expected))
	}
}

// An empty brief falls back to the description given at construction.
func TestUsageDefaultBrief(t *testing.T) {
	a := setupUsage()
	expected := `NAME:
    iterate - Print a greeting a fixed number of times
`
	got := a.Usage("")
	if got[:len(expected)] != expected {
		t.Errorf("wrong usage:\n%s", firstDiff(got[:len(expected)], expected))
	}
}

func TestFullUsage(t *testing.T) {
	a := setupUsage()
	expected := a.ShortUsage() + "\n" + a.Usage("brief")
	got := a.FullUsage("brief")
	if got != expected {
		t.Errorf("wrong full usage:\n%s", firstDiff(got, expected))
	}
}

func TestShortUsageMultiple(t *testing.T) {
	a := New("collect", "")
	Option[string](a, "w", "word", "A word to collect", "WORD", Multiple)
	expected := `SYNOPSIS:
    collect [-w|--word <WORD>...]
`
	got := a.ShortUsage()
	if got != expected {
		t.Errorf("wrong short usage:\n%s", firstDiff(got, expected))
	}
}
