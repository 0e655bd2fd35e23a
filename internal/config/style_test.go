// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package config

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestResolveStylesInheritsUnsetFields(t *testing.T) {
	c := &Config{
		Style: []Style{
			{Name: "base", Foreground: "#fff", Background: "#000", Font: "sans-9"},
			{Name: "active", Inherits: strPtr("base"), Foreground: "#0f0"},
		},
	}
	ResolveStyles(c)

	active := c.Style[1]
	if active.Foreground != "#0f0" {
		t.Fatalf("active.Foreground = %q, want own value #0f0 preserved", active.Foreground)
	}
	if active.Background != "#000" {
		t.Fatalf("active.Background = %q, want inherited #000", active.Background)
	}
	if active.Font != "sans-9" {
		t.Fatalf("active.Font = %q, want inherited sans-9", active.Font)
	}
}

func TestResolveStylesWalksMultiLevelChain(t *testing.T) {
	c := &Config{
		Style: []Style{
			{Name: "base", Foreground: "#fff"},
			{Name: "mid", Inherits: strPtr("base")},
			{Name: "leaf", Inherits: strPtr("mid")},
		},
	}
	ResolveStyles(c)
	if c.Style[2].Foreground != "#fff" {
		t.Fatalf("leaf.Foreground = %q, want transitively inherited #fff", c.Style[2].Foreground)
	}
}

func TestResolveStylesToleratesCycleWithoutHanging(t *testing.T) {
	c := &Config{
		Style: []Style{
			{Name: "a", Inherits: strPtr("b"), Foreground: "#a"},
			{Name: "b", Inherits: strPtr("a"), Foreground: "#b"},
		},
	}
	done := make(chan struct{})
	go func() {
		ResolveStyles(c)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("ResolveStyles did not return on a style-inheritance cycle")
	}
}

func TestParsePixel(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"#FF8800", 0xFF8800, true},
		{"102030", 0x102030, true},
		{"#fff", 0, false},
		{"#GGGGGG", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParsePixel(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParsePixel(%q) = %#x,%v, want %#x,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestStyleByName(t *testing.T) {
	c := &Config{Style: []Style{{Name: "focus", Border: "#FF0000"}}}
	if s, ok := c.StyleByName("focus"); !ok || s.Border != "#FF0000" {
		t.Fatalf("StyleByName(focus) = %v,%v, want the declared style", s, ok)
	}
	if _, ok := c.StyleByName("missing"); ok {
		t.Fatalf("StyleByName(missing) reported ok")
	}
}

func TestResolveStylesIgnoresUnknownParent(t *testing.T) {
	c := &Config{
		Style: []Style{
			{Name: "orphan", Inherits: strPtr("missing"), Foreground: "#abc"},
		},
	}
	ResolveStyles(c)
	if c.Style[0].Foreground != "#abc" {
		t.Fatalf("orphan.Foreground = %q, want unchanged #abc", c.Style[0].Foreground)
	}
}
