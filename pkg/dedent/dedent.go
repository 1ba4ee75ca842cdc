// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dedent strips common leading indentation from multi-line strings,
// so raw string literals can be written indented with the surrounding code.
package dedent

import "strings"

// Dedent removes the longest common leading whitespace prefix from every
// non-blank line of s and trims leading and trailing blank lines. Blank
// lines in the middle are kept, emptied of whitespace.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	prefix := ""
	found := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		if !found {
			prefix = indent
			found = true
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.TrimPrefix(line, prefix))
	}

	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
