// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strcase converts dashed option names to camelCase mapping keys.
package strcase

import "strings"

// Camel converts a --dashed-name option to its camelCase key form:
// "--foo-bar" becomes "fooBar". Leading dashes are stripped and empty
// segments from doubled or trailing dashes are skipped. The first segment is
// kept as written; following segments get their first rune upper-cased.
func Camel(name string) string {
	name = strings.TrimLeft(name, "-")
	segs := strings.Split(name, "-")

	var b strings.Builder
	b.Grow(len(name))
	first := true
	for _, seg := range segs {
		if seg == "" {
			continue
		}
		if first {
			b.WriteString(seg)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}
