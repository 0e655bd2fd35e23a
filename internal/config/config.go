// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package config defines the TOML-shaped configuration data this window
// manager's scripted collaborator would populate. The core itself never
// interprets scripts; this package is the reference loader for the
// declarative shape the registry is built from.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Callback is an opaque handle into the out-of-scope scripted runtime,
// owned and resolved by that runtime, never by the core.
type Callback string

// Runtime invokes a Callback with a subject snapshot. The only
// implementation is the scripted collaborator, which this core never
// provides.
type Runtime interface {
	Invoke(handle Callback, subject any) error
}

// Options mirrors the process-wide run flags set via `set(option, value)`
// calls in the configuration file.
type Options struct {
	Step             int    `toml:"step"`
	Snap             int    `toml:"snap"`
	DefaultGravity   string `toml:"default_gravity"`
	Urgent           bool   `toml:"urgent"`
	Resize           bool   `toml:"resize"`
	Tiling           bool   `toml:"tiling"`
	ClickToFocus     bool   `toml:"click_to_focus"`
	SkipPointerWarp  bool   `toml:"skip_pointer_warp"`
	SkipUrgentWarp   bool   `toml:"skip_urgent_warp"`
	WMName           string `toml:"wmname"`
	HonorSizeHints   bool   `toml:"honor_size_hints"`
}

// Gravity is one `gravity name, [x,y,w,h]` declaration.
type Gravity struct {
	Name      string `toml:"name"`
	X         int    `toml:"x"`
	Y         int    `toml:"y"`
	W         int    `toml:"w"`
	H         int    `toml:"h"`
	Direction string `toml:"direction"` // "", "horizontal" or "vertical"
}

// Matcher is one field/pattern pair of a tag's matcher spec: a hash of
// {field-symbol|[field,...]} => regex|symbol|[symbol,...].
type Matcher struct {
	Fields  []string `toml:"fields"`
	Pattern string   `toml:"pattern"`
}

// Tag is one `tag name, matcher_spec do ... end` declaration.
type Tag struct {
	Name       string    `toml:"name"`
	Matchers   []Matcher `toml:"matchers"`
	Gravity    string    `toml:"gravity"`
	Geometry   []int     `toml:"geometry"`
	Position   []int     `toml:"position"`
	Type       string    `toml:"type"`
	Stick      bool      `toml:"stick"`
	Float      bool      `toml:"float"`
	Full       bool      `toml:"full"`
	Borderless bool      `toml:"borderless"`
	Center     bool      `toml:"center"`
	Fixed      bool      `toml:"fixed"`
	Resize     bool      `toml:"resize"`
	Urgent     bool      `toml:"urgent"`
	Zaphod     bool      `toml:"zaphod"`
	OnMatch    Callback  `toml:"on_match"`
}

// View is one `view name, tags...` declaration.
type View struct {
	Name    string   `toml:"name"`
	Tags    []string `toml:"tags"`
	Icon    string   `toml:"icon"`
	IconOnly bool    `toml:"icon_only"`
	Dynamic bool     `toml:"dynamic"`
	Style   string   `toml:"style"`
}

// Grab is one `grab chain_string => action` declaration.
type Grab struct {
	Chain    string   `toml:"chain"`
	Action   string   `toml:"action"`
	Arg      string   `toml:"arg"`
	Callback Callback `toml:"callback"`
	Links    []Grab   `toml:"links"`
}

// Screen configures a statically-addressed output (primarily used for
// Zaphod-style per-screen defaults; Xinerama/Xrandr still supply the
// authoritative geometry at runtime).
type Screen struct {
	Index         int    `toml:"index"`
	DefaultView   string `toml:"default_view"`
	PanelTopStyle string `toml:"panel_top_style"`
	PanelBotStyle string `toml:"panel_bot_style"`
}

// Style is one named `style name do ... end` block, with cascade
// resolved post-load by ResolveStyles.
type Style struct {
	Name       string  `toml:"name"`
	Inherits   *string `toml:"inherits"`
	Foreground string  `toml:"foreground"`
	Background string  `toml:"background"`
	Border     string  `toml:"border"`
	BorderWidth *int   `toml:"border_width"`
	Padding    []int   `toml:"padding"`
	Margin     []int   `toml:"margin"`
	Font       string  `toml:"font"`
}

// Config is the full TOML-shaped struct tree: gravities, tags, views,
// grabs, screens, styles, options.
type Config struct {
	Options  Options   `toml:"options"`
	Gravity  []Gravity `toml:"gravity"`
	Tag      []Tag     `toml:"tag"`
	View     []View    `toml:"view"`
	Grab     []Grab    `toml:"grab"`
	Screen   []Screen  `toml:"screen"`
	Style    []Style   `toml:"style"`
}

// Load decodes a TOML configuration file.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("couldn't read config file %s: %w", path, err)
	}
	ResolveStyles(&c)
	return &c, nil
}

// Write encodes cfg back to path as TOML.
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("couldn't encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
