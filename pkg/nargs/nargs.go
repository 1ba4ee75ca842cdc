// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nargs

import (
	"slices"
	"strings"

	"github.com/yeetrun/nargs/pkg/strcase"
)

// CommandKey is the reserved mapping key holding the extracted leading
// command. Camel-case conversion never produces a leading underscore, so the
// key cannot collide with a user option.
const CommandKey = "_command"

const (
	helpFlag    = "--help"
	versionFlag = "--version"
)

// Options configures a Parse call.
type Options struct {
	// AllowMultiple lists option names, in their raw --dashed form, that
	// always accumulate into a List even when supplied once or not at all.
	AllowMultiple []string

	// Commands lists the permitted values for a leading positional command
	// token. An empty list disables command extraction entirely.
	Commands []string

	// HelpVersion enables the --help/--version short-circuit: if either
	// token appears anywhere in the input, parsing returns immediately with
	// a single-key result and no further validation.
	HelpVersion bool
}

// Parse walks tokens left to right and builds the result mapping. Every
// option must be a --dashed-name token immediately followed by a value token;
// values are kept as raw text. The input slice is never mutated.
func Parse(tokens []string, opts Options) (*Args, error) {
	if opts.HelpVersion {
		if slices.Contains(tokens, helpFlag) {
			a := newArgs()
			a.set("help", Flag(true))
			return a, nil
		}
		if slices.Contains(tokens, versionFlag) {
			a := newArgs()
			a.set("version", Flag(true))
			return a, nil
		}
	}

	a := newArgs()
	rest := tokens

	if len(opts.Commands) > 0 {
		if len(tokens) == 0 {
			return nil, &ParseError{Kind: ErrNoCommandGiven}
		}
		cmd := tokens[0]
		if !slices.Contains(opts.Commands, cmd) {
			return nil, &ParseError{
				Kind:    ErrUnknownCommand,
				Arg:     cmd,
				Allowed: slices.Clone(opts.Commands),
			}
		}
		a.set(CommandKey, Scalar(cmd))
		rest = tokens[1:]
	}

	for _, name := range opts.AllowMultiple {
		a.set(strcase.Camel(name), List{})
	}

	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if !strings.HasPrefix(arg, "--") {
			return nil, &ParseError{
				Kind:   ErrExpectedNamedArgument,
				Arg:    arg,
				Tokens: slices.Clone(tokens),
			}
		}
		if i == len(rest)-1 {
			return nil, &ParseError{
				Kind:   ErrMissingValue,
				Arg:    arg,
				Tokens: slices.Clone(tokens),
			}
		}
		i++
		val := rest[i]

		key := strcase.Camel(arg)
		if list, ok := a.values[key].(List); ok {
			a.values[key] = append(list, val)
		} else {
			a.set(key, Scalar(val))
		}
	}

	return a, nil
}
