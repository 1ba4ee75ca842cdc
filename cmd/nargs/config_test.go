// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/nargs/pkg/nargs"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFromDir(t *testing.T) {
	t.Setenv("NARGS_CONFIG", "")
	t.Setenv("NARGS_FORMAT", "")

	root := t.TempDir()
	writeConfig(t, root, `
commands = ["run", "build"]
multi = ["--tag"]
format = "yaml"
`)

	// The file is found from a nested directory, like any project config.
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFromDir(nested)
	if err != nil {
		t.Fatalf("loadConfigFromDir() error = %v", err)
	}
	want := &config{
		Commands:    []string{"run", "build"},
		Multi:       []string{"--tag"},
		HelpVersion: true,
		Format:      formatYAML,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigFromDir_Defaults(t *testing.T) {
	t.Setenv("NARGS_CONFIG", "")
	t.Setenv("NARGS_FORMAT", "")

	cfg, err := loadConfigFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfigFromDir() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, defaultConfig()) {
		t.Errorf("config = %+v, want defaults %+v", cfg, defaultConfig())
	}
}

func TestLoadConfigFromDir_EnvOverrides(t *testing.T) {
	alt := t.TempDir()
	path := writeConfig(t, alt, `commands = ["deploy"]`)

	t.Setenv("NARGS_CONFIG", path)
	t.Setenv("NARGS_FORMAT", formatYAML)

	cfg, err := loadConfigFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfigFromDir() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.Commands, []string{"deploy"}) {
		t.Errorf("Commands = %v, want [deploy]", cfg.Commands)
	}
	if cfg.Format != formatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, formatYAML)
	}
}

func TestLoadConfigFromDir_BadFormat(t *testing.T) {
	t.Setenv("NARGS_CONFIG", "")
	t.Setenv("NARGS_FORMAT", "xml")

	if _, err := loadConfigFromDir(t.TempDir()); err == nil {
		t.Error("loadConfigFromDir() succeeded with an unknown format")
	}
}

func TestRender(t *testing.T) {
	args, err := nargs.Parse(
		[]string{"--name", "phil", "--tag", "a"},
		nargs.Options{AllowMultiple: []string{"--tag"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		format string
		want   string
	}{
		{
			format: formatJSON,
			want:   "{\n  \"tag\": [\n    \"a\"\n  ],\n  \"name\": \"phil\"\n}\n",
		},
		{
			format: formatYAML,
			want:   "tag:\n    - a\nname: phil\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := render(&buf, tt.format, args); err != nil {
				t.Fatalf("render() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
