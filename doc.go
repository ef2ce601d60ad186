// This file is part of go-args.
//
// Copyright (C) 2016-2025  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package args - dead simple command line argument declaration, parsing and
validation.

Options are declared once against a registry, parsed from any slice of
strings, and read back as typed values. Parsing and retrieval never panic,
everything that can go wrong at run time comes back as an error. Registration
mistakes are programmer errors and panic at startup.

# Features

• Declarative registration: a flag or a typed option in one call, chainable.

• Short (`-i`) and long (`--iter`) names for every option, usable
interchangeably at parsing and at retrieval.

• Typed values. The type is part of the declaration, arguments convert once
during parsing, and a value read as the wrong type is an error instead of a
silent conversion.

• bool, int, int64, uint, uint64, float64, string and time.Duration values.

• Required, optional and repeated options. Repeated occurrences join with a
comma into a single value.

• Defaults for optional options, applied when the option is not given.

• Validation rules applied at retrieval. Every rule runs, the error lists
every rule that failed rather than the first one.

• Supports passing `--` to stop parsing arguments (everything after is left
in `Remaining()`).

• Supports command line options with '='. For example: you can use
`--string=mystring` and `--string mystring`.

• Re-parsing resets state: values never leak from one parse into the next,
and a failed parse leaves the previous values readable.

• Usage output in three shapes: a one line synopsis, a verbose option list,
or both.

• Unrecognized options suggest the closest declared name.

# Example

	a := args.New("iterate", "Run an action a number of times")
	a.Flag("h", "help", "Print the usage menu")
	args.Option[int](a, "i", "iter", "The number of times to iterate", "TIMES", args.Required)
	args.Option[string](a, "l", "log_file", "The log file location", "PATH", args.Optional, "output.log")

	err := a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	iterations, err := args.ValidatedValueOf[int](a, "iter",
		validate.NewOrder(validate.GreaterThan, 0),
		validate.NewOrder(validate.LessThanOrEqual, 10))
*/
package args
