// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nargs

// Value is the sealed union of shapes a parsed option can hold. A plain
// option is always a Scalar, an option declared in Options.AllowMultiple is
// always a List, and the help/version short-circuit produces a single Flag.
type Value interface {
	isValue()
}

// Scalar is a single raw string value.
type Scalar string

// List is an ordered sequence of raw string values, accumulated in
// encounter order.
type List []string

// Flag is a boolean value. It only appears as the result of the
// --help/--version short-circuit.
type Flag bool

func (Scalar) isValue() {}
func (List) isValue()   {}
func (Flag) isValue()   {}

// Args is the result mapping of a parse: camelCased option names to their
// values, in insertion order. A fresh Args is built per Parse call; it is
// never shared or reused.
type Args struct {
	keys   []string
	values map[string]Value
}

func newArgs() *Args {
	return &Args{values: make(map[string]Value)}
}

// set records v under key, keeping the position of an existing key.
func (a *Args) set(key string, v Value) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = v
}

// Get returns the value stored under key.
func (a *Args) Get(key string) (Value, bool) {
	v, ok := a.values[key]
	return v, ok
}

// String returns the scalar value stored under key. It reports false when the
// key is absent or holds a list.
func (a *Args) String(key string) (string, bool) {
	s, ok := a.values[key].(Scalar)
	return string(s), ok
}

// Strings returns the list stored under key, or nil when the key is absent or
// holds a scalar.
func (a *Args) Strings(key string) []string {
	list, ok := a.values[key].(List)
	if !ok {
		return nil
	}
	return list
}

// Keys returns the mapping keys in insertion order.
func (a *Args) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of keys in the mapping.
func (a *Args) Len() int {
	return len(a.keys)
}

// Command returns the extracted leading command, if command mode was enabled
// and a command was parsed.
func (a *Args) Command() (string, bool) {
	return a.String(CommandKey)
}

// Help reports whether the parse short-circuited on --help.
func (a *Args) Help() bool {
	f, _ := a.values["help"].(Flag)
	return bool(f)
}

// Version reports whether the parse short-circuited on --version.
func (a *Args) Version() bool {
	f, _ := a.values["version"].(Flag)
	return bool(f)
}
