// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package config

import (
	"strconv"
	"strings"
)

// StyleByName returns the named style after the inheritance cascade.
func (c *Config) StyleByName(name string) (*Style, bool) {
	for i := range c.Style {
		if c.Style[i].Name == name {
			return &c.Style[i], true
		}
	}
	return nil, false
}

// ParsePixel converts a "#RRGGBB" color string to an X11 pixel value.
func ParsePixel(s string) (uint32, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// ResolveStyles cascades each style's unset fields from the style it
// names in Inherits. Resolution walks each style's inheritance chain
// once; a cycle stops after visiting every style at most once rather
// than looping forever.
func ResolveStyles(c *Config) {
	byName := make(map[string]*Style, len(c.Style))
	for i := range c.Style {
		byName[c.Style[i].Name] = &c.Style[i]
	}
	for i := range c.Style {
		resolveStyle(&c.Style[i], byName, make(map[string]bool))
	}
}

func resolveStyle(s *Style, byName map[string]*Style, visited map[string]bool) {
	if s.Inherits == nil || visited[s.Name] {
		return
	}
	visited[s.Name] = true
	parent, ok := byName[*s.Inherits]
	if !ok {
		return
	}
	resolveStyle(parent, byName, visited)

	if s.Foreground == "" {
		s.Foreground = parent.Foreground
	}
	if s.Background == "" {
		s.Background = parent.Background
	}
	if s.Border == "" {
		s.Border = parent.Border
	}
	if s.BorderWidth == nil {
		s.BorderWidth = parent.BorderWidth
	}
	if len(s.Padding) == 0 {
		s.Padding = parent.Padding
	}
	if len(s.Margin) == 0 {
		s.Margin = parent.Margin
	}
	if s.Font == "" {
		s.Font = parent.Font
	}
}
