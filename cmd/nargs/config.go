// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/nargs/pkg/nargs"
)

const configName = "nargs.toml"

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// config drives the parse. It is read from nargs.toml in the working
// directory or any parent, with NARGS_CONFIG overriding the file location
// and NARGS_FORMAT the output format.
type config struct {
	Commands    []string `toml:"commands"`
	Multi       []string `toml:"multi"`
	HelpVersion bool     `toml:"help_version"`
	Format      string   `toml:"format"`
}

func defaultConfig() *config {
	return &config{
		HelpVersion: true,
		Format:      formatJSON,
	}
}

func (c *config) options() nargs.Options {
	return nargs.Options{
		AllowMultiple: c.Multi,
		Commands:      c.Commands,
		HelpVersion:   c.HelpVersion,
	}
}

func loadConfig() (*config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return loadConfigFromDir(cwd)
}

func loadConfigFromDir(startDir string) (*config, error) {
	cfg := defaultConfig()

	path := os.Getenv("NARGS_CONFIG")
	if path == "" {
		p, err := findConfigPath(startDir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		path = p
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if f := os.Getenv("NARGS_FORMAT"); f != "" {
		cfg.Format = f
	}
	switch cfg.Format {
	case formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return cfg, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, configName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
