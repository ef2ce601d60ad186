// This file is part of go-args.
//
// Copyright (C) 2016-2024  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package args

import (
	"github.com/mattforni/go-args/internal/help"
)

// ShortUsage - Returns a one block synopsis of the declared options, e.g.
//
//	SYNOPSIS:
//	    iterate -i|--iter <TIMES> [-h|--help] [-l|--log_file <FILE>]
func (a *Args) ShortUsage() string {
	return help.Synopsis(a.program, a.schemaList())
}

// Usage - Returns the verbose usage message: the program name with the given
// brief, then the required parameters and options with their descriptions
// and defaults. An empty brief falls back to the description the registry
// was built with.
func (a *Args) Usage(brief string) string {
	if brief == "" {
		brief = a.description
	}
	return help.Name(a.program, brief) + "\n" + help.OptionList(a.schemaList())
}

// FullUsage - Returns the short and verbose usage messages separated by a
// blank line.
func (a *Args) FullUsage(brief string) string {
	return a.ShortUsage() + "\n" + a.Usage(brief)
}
