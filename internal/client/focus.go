// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import "tilewm/internal/wmcore"

// ClearUrgent drops the urgent mode bit, satisfying focus.Client.
func (c *Client) ClearUrgent() { c.Flags = c.Flags.Clear(wmcore.FlagUrgent) }

// AdvertisesTakeFocusMsg reports whether the client should receive a
// WM_TAKE_FOCUS ClientMessage instead of a raw XSetInputFocus, keyed off
// the focus-takes-msg lifecycle bit read from WM_PROTOCOLS.
func (c *Client) AdvertisesTakeFocusMsg() bool {
	return c.Flags.Has(wmcore.FlagFocusTakesMsg)
}

// CenterPoint returns the client's geometry center in root coordinates,
// used for the pointer-warp-on-focus step.
func (c *Client) CenterPoint() (x, y int) {
	return c.Geom.Center()
}
