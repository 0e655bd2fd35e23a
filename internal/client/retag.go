// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import (
	"tilewm/internal/tag"
	"tilewm/internal/wmcore"
)

// Retag clears the tag bitmask, runs each tag's matcher in declaration
// order, ORs in its bit and applies its attached mode
// flags/geometry/gravity/screen-stick on a match, and falls back to the
// default tag if nothing else matched and the client is not sticky.
func Retag(c *Client, tags []*tag.Tag) {
	c.Tags = 0
	matchedNonDefault := false

	for _, t := range tags {
		if !tag.Check(t, c) {
			continue
		}
		c.Tags |= t.Bit()
		if t.ID != tag.DefaultTagID {
			matchedNonDefault = true
		}
		c.Flags |= t.ModeFlags
		if t.Stick {
			c.Flags |= wmcore.FlagStick
		}
		if t.Geometry != nil {
			c.Geom = *t.Geometry
		}
		if t.GravityID != nil {
			c.GravityID = *t.GravityID
		}
		if t.ScreenID != nil {
			c.ScreenID = *t.ScreenID
			c.Flags |= wmcore.FlagStickScreen
		}
		if t.OnMatch != nil {
			t.OnMatch.Invoke(c)
		}
	}

	if !matchedNonDefault && !c.Flags.Has(wmcore.FlagStick) {
		c.Tags |= tag.DefaultBit
	}
}
