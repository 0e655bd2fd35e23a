// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDecodesFullStructTree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	raw := `
[options]
step = 5
snap = 10
tiling = true

[[gravity]]
name = "center"
x = 25
y = 25
w = 50
h = 50

[[tag]]
name = "term"
gravity = "center"

[[view]]
name = "main"
tags = ["term"]

[[style]]
name = "base"
foreground = "#fff"
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Options.Step != 5 || !cfg.Options.Tiling {
		t.Fatalf("Options = %+v, want step=5 tiling=true", cfg.Options)
	}
	if len(cfg.Gravity) != 1 || cfg.Gravity[0].Name != "center" {
		t.Fatalf("Gravity = %+v, want one entry named center", cfg.Gravity)
	}
	if len(cfg.Tag) != 1 || cfg.Tag[0].Gravity != "center" {
		t.Fatalf("Tag = %+v, want one entry gravity=center", cfg.Tag)
	}
	if len(cfg.View) != 1 || len(cfg.View[0].Tags) != 1 {
		t.Fatalf("View = %+v, want one entry with one tag", cfg.View)
	}
}
