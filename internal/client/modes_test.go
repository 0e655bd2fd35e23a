// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import (
	"testing"

	"tilewm/internal/wmcore"
)

func TestToggleModesEnteringFullAndBorderlessTogetherPreservesBorder(t *testing.T) {
	c := &Client{BorderWidth: 4}
	screen := wmcore.Rect{X: 0, Y: 0, W: 1920, H: 1080}

	ToggleModes(c, wmcore.FlagFull|wmcore.FlagBorderless, true, screen, nil, nil, nil)
	if c.BorderWidth != 0 {
		t.Fatalf("BorderWidth = %d while full+borderless, want 0", c.BorderWidth)
	}

	// Leave both again; the original border width must come back, not 0.
	ToggleModes(c, wmcore.FlagFull|wmcore.FlagBorderless, true, screen, nil, nil, nil)
	if c.BorderWidth != 4 {
		t.Fatalf("BorderWidth = %d after leaving full+borderless, want original 4", c.BorderWidth)
	}
}

func TestToggleModesRefusesFullForFixedSizeMismatch(t *testing.T) {
	c := &Client{
		BorderWidth: 1,
		Flags:       wmcore.FlagFixed,
		Hints:       wmcore.SizeHints{MinW: 320, MinH: 240, MaxW: 320, MaxH: 240},
	}
	screen := wmcore.Rect{X: 0, Y: 0, W: 1920, H: 1080}

	ToggleModes(c, wmcore.FlagFull, true, screen, nil, nil, nil)
	if c.Flags.Has(wmcore.FlagFull) {
		t.Fatalf("fixed 320x240 client entered fullscreen on a 1920x1080 screen")
	}
	if c.BorderWidth != 1 {
		t.Fatalf("BorderWidth = %d after refused fullscreen, want untouched 1", c.BorderWidth)
	}
}

func TestToggleModesIsAnInvolutionOnModeBits(t *testing.T) {
	c := &Client{BorderWidth: 2}
	screen := wmcore.Rect{W: 800, H: 600}
	mask := wmcore.FlagFloat | wmcore.FlagStick | wmcore.FlagResize

	ToggleModes(c, mask, true, screen, nil, nil, nil)
	ToggleModes(c, mask, true, screen, nil, nil, nil)
	if c.Flags&wmcore.ModeMask != 0 {
		t.Fatalf("mode bits = %v after double toggle, want none", c.Flags&wmcore.ModeMask)
	}
}

func TestToggleModesCenterForcesFloatAndCenters(t *testing.T) {
	c := &Client{Geom: wmcore.Rect{W: 200, H: 100}}
	screen := wmcore.Rect{X: 0, Y: 0, W: 1000, H: 500}

	ToggleModes(c, wmcore.FlagCenter, true, screen, nil, nil, nil)
	if !c.Flags.Has(wmcore.FlagFloat) {
		t.Fatalf("Flags = %v, want float forced by center", c.Flags)
	}
	if c.Geom.X != 400 || c.Geom.Y != 200 {
		t.Fatalf("Geom = %+v, want centered at (400,200)", c.Geom)
	}
}

func TestToggleModesSequentialFullThenBorderlessPreservesBorder(t *testing.T) {
	c := &Client{BorderWidth: 3}
	screen := wmcore.Rect{X: 0, Y: 0, W: 1920, H: 1080}

	ToggleModes(c, wmcore.FlagFull, true, screen, nil, nil, nil)
	if c.BorderWidth != 0 {
		t.Fatalf("BorderWidth = %d after entering full, want 0", c.BorderWidth)
	}

	ToggleModes(c, wmcore.FlagBorderless, true, screen, nil, nil, nil)
	if c.BorderWidth != 0 {
		t.Fatalf("BorderWidth = %d after also entering borderless, want 0", c.BorderWidth)
	}

	// Leaving full while still borderless must not restore the border yet.
	ToggleModes(c, wmcore.FlagFull, true, screen, nil, nil, nil)
	if c.BorderWidth != 0 {
		t.Fatalf("BorderWidth = %d after leaving full (still borderless), want 0", c.BorderWidth)
	}

	// Leaving borderless must restore the real width, not the 0 left in
	// place while both modes were active.
	ToggleModes(c, wmcore.FlagBorderless, true, screen, nil, nil, nil)
	if c.BorderWidth != 3 {
		t.Fatalf("BorderWidth = %d after leaving borderless, want original 3", c.BorderWidth)
	}
}
