// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nargs parses its arguments under the strict named-argument grammar
// and prints the resulting mapping. The allowed commands, multi-value options
// and output format come from an nargs.toml config file, so the tool doubles
// as a quick way to inspect how a given command line parses.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/nargs/pkg/nargs"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	args, err := nargs.Parse(os.Args[1:], cfg.options())
	if err != nil {
		printParseError(os.Stderr, err)
		os.Exit(1)
	}

	if err := render(os.Stdout, cfg.Format, args); err != nil {
		log.Fatalf("failed to render result: %v", err)
	}
}

func render(w io.Writer, format string, args *nargs.Args) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(args, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(args)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func printParseError(w io.Writer, err error) {
	msg := err.Error()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		msg = color.RedString(msg)
	}
	fmt.Fprintln(w, msg)
}
