// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import "tilewm/internal/wmcore"

// StatePublisher republishes a client's externally-visible state after a
// mode change: _NET_WM_STATE and the internal ewmh flag property for the
// client. Implemented by internal/ewmh.
type StatePublisher interface {
	PublishClientState(c *Client)
}

// ModeHook fires the client_mode hook. Implemented by internal/hook.
type ModeHook interface {
	FireClientMode(c *Client)
}

// FocusProvider supplies the currently-focused client's screen, consulted
// when a client enters stick without a screen pin already set.
type FocusProvider interface {
	FocusedScreen() (wmcore.ID, bool)
}

// ToggleModes XORs mask into the client's mode flags and runs each
// affected mode's entry/exit side effect exactly once, determined by
// comparing the before/after flags bit-by-bit. screenSize is the target
// screen's current geometry, needed for the fullscreen-refusal rule and
// the center placement.
func ToggleModes(c *Client, mask wmcore.ClientFlag, allowSetGravity bool, screenSize wmcore.Rect, focus FocusProvider, pub StatePublisher, hooks ModeHook) {
	mask &= wmcore.ModeMask
	before := c.Flags
	c.Flags ^= mask

	entering := func(bit wmcore.ClientFlag) bool {
		return !before.Has(bit) && c.Flags.Has(bit)
	}
	leaving := func(bit wmcore.ClientFlag) bool {
		return before.Has(bit) && !c.Flags.Has(bit)
	}

	// Full and borderless both zero the border width and both restore it
	// from the same saved value, so a call that enters (or leaves) both at
	// once must only capture the real width once: the border is already
	// zero, and the real width already saved, once either mode is active.
	origBorderWidth := c.BorderWidth
	wasBorderZeroed := before.Has(wmcore.FlagFull) || before.Has(wmcore.FlagBorderless)

	if entering(wmcore.FlagFull) {
		// Fullscreen refusal: a fixed-size client whose min size does not
		// match the screen size must not enter fullscreen.
		if c.Flags.Has(wmcore.FlagFixed) && (c.Hints.MinW != screenSize.W || c.Hints.MinH != screenSize.H) {
			c.Flags &^= wmcore.FlagFull
		} else {
			if !wasBorderZeroed {
				c.savedBorderWidth = origBorderWidth
			}
			c.BorderWidth = 0
		}
	} else if leaving(wmcore.FlagFull) && !c.Flags.Has(wmcore.FlagBorderless) {
		c.BorderWidth = c.savedBorderWidth
	}

	if entering(wmcore.FlagBorderless) {
		if !wasBorderZeroed {
			c.savedBorderWidth = origBorderWidth
		}
		c.BorderWidth = 0
	} else if leaving(wmcore.FlagBorderless) && !c.Flags.Has(wmcore.FlagFull) {
		c.BorderWidth = c.savedBorderWidth
	}

	if entering(wmcore.FlagStick) {
		if !c.Flags.Has(wmcore.FlagStickScreen) && focus != nil {
			if sid, ok := focus.FocusedScreen(); ok {
				c.ScreenID = sid
			}
		}
		if allowSetGravity {
			for i := range c.Gravities {
				if c.Gravities[i] == 0 {
					c.Gravities[i] = c.GravityID
				}
			}
		}
	}

	if entering(wmcore.FlagCenter) {
		c.Flags |= wmcore.FlagFloat
		c.Geom.X = screenSize.X + (screenSize.W-c.Geom.W)/2
		c.Geom.Y = screenSize.Y + (screenSize.H-c.Geom.H)/2
	}

	if pub != nil {
		pub.PublishClientState(c)
	}
	if hooks != nil {
		hooks.FireClientMode(c)
	}
}
