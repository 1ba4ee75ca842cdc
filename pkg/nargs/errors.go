// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nargs

import (
	"fmt"
	"strings"

	"github.com/yeetrun/nargs/pkg/dedent"
)

// ErrorKind identifies the reason a parse failed. Callers should branch on
// the kind rather than on message text.
type ErrorKind int

const (
	// ErrNoCommandGiven: command mode is enabled but the token sequence is
	// empty.
	ErrNoCommandGiven ErrorKind = iota

	// ErrUnknownCommand: the first token is not in the allowed command set.
	ErrUnknownCommand

	// ErrExpectedNamedArgument: a token expected to be an option name does
	// not start with "--".
	ErrExpectedNamedArgument

	// ErrMissingValue: an option name is the last token, with no value
	// following it.
	ErrMissingValue
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNoCommandGiven:
		return "NoCommandGiven"
	case ErrUnknownCommand:
		return "UnknownCommand"
	case ErrExpectedNamedArgument:
		return "ExpectedNamedArgument"
	case ErrMissingValue:
		return "MissingValue"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned when the token sequence violates the grammar.
// Exactly one failure is reported per parse; there is no partial result.
type ParseError struct {
	Kind ErrorKind

	// Arg is the offending token, when one exists.
	Arg string

	// Tokens is the full original token sequence, for grammar errors.
	Tokens []string

	// Allowed is the configured command set, for ErrUnknownCommand.
	Allowed []string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrNoCommandGiven:
		return "no command given"
	case ErrUnknownCommand:
		return dedent.Dedent(fmt.Sprintf(`
			unknown command %q
			expected one of: %s
		`, e.Arg, strings.Join(e.Allowed, ", ")))
	case ErrExpectedNamedArgument:
		return dedent.Dedent(fmt.Sprintf(`
			expected a named argument, got %q
			named arguments start with "--" and take a value: --name value
			while parsing: %s
		`, e.Arg, strings.Join(e.Tokens, " ")))
	case ErrMissingValue:
		return dedent.Dedent(fmt.Sprintf(`
			missing a value for %q
			every named argument takes a value: --name value
			while parsing: %s
		`, e.Arg, strings.Join(e.Tokens, " ")))
	}
	return fmt.Sprintf("parse error: %s", e.Kind)
}
