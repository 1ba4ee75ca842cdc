// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nargs parses a flat sequence of command-line tokens under a strict
// named-argument grammar: every option is written as --dashed-name and is
// always followed by a value token. There are no short flags, no
// --flag=value syntax, and no type coercion; values stay as raw text.
//
// Parsing produces an insertion-ordered mapping from camelCased option names
// to values:
//
//	args, err := nargs.Parse([]string{"--name", "phil", "--age", "32"}, nargs.Options{})
//	// args: {name: "phil", age: "32"}
//
// Options declared in Options.AllowMultiple always accumulate into a list,
// even when supplied once or not at all:
//
//	args, err := nargs.Parse(
//		[]string{"--name", "phil", "--name", "matt"},
//		nargs.Options{AllowMultiple: []string{"--name"}},
//	)
//	// args: {name: ["phil", "matt"]}
//
// With a non-empty Options.Commands set, the first token must be one of the
// allowed command literals; it is recorded under the reserved CommandKey and
// stripped before the named arguments are parsed:
//
//	args, err := nargs.Parse(
//		[]string{"run", "--force", "x"},
//		nargs.Options{Commands: []string{"run", "build"}},
//	)
//	// args: {_command: "run", force: "x"}
//
// When Options.HelpVersion is set, a --help token anywhere in the input
// short-circuits the parse to {help: true}, ignoring every other token,
// malformed or not; --version behaves the same way with lower precedence.
//
// Failures are reported as a *ParseError carrying a machine-readable
// ErrorKind plus a multi-line message suitable for terminal display.
package nargs
