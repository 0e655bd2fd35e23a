// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package client implements the client lifecycle: adoption, hint reading,
// tagging, mode toggling, and close.
package client

import (
	"tilewm/internal/layer"
	"tilewm/internal/wmcore"
)

// Client is one top-level window this window manager manages.
type Client struct {
	ID      wmcore.ID
	Window  wmcore.Window
	Leader  *wmcore.Window
	Colormap uint32

	name     string
	instance string
	class    string
	role     string

	Tags uint32
	Geom wmcore.Rect
	Hints wmcore.SizeHints

	// Gravities is the per-view gravity vector; length == #views, resized
	// in place as views are added/removed.
	Gravities []wmcore.ID
	GravityID wmcore.ID
	ScreenID  wmcore.ID

	Flags wmcore.ClientFlag

	BorderWidth      int
	savedBorderWidth int
}

func (c *Client) EntityID() wmcore.ID         { return c.ID }
func (c *Client) EntityWindow() wmcore.Window { return c.Window }

// Name, Instance, Class, Role, TypeFlag and Sticky satisfy tag.Subject.
func (c *Client) Name() string     { return c.name }
func (c *Client) Instance() string { return c.instance }
func (c *Client) Class() string    { return c.class }
func (c *Client) Role() string     { return c.role }
func (c *Client) TypeFlag() wmcore.ClientFlag { return c.Flags.Type() }
func (c *Client) Sticky() bool     { return c.Flags.Has(wmcore.FlagStick) }

// SetIdentity stores the hint-derived strings read during adoption:
// WM_CLASS, _NET_WM_NAME/WM_NAME, WM_WINDOW_ROLE.
func (c *Client) SetIdentity(name, instance, class, role string) {
	c.name, c.instance, c.class, c.role = name, instance, class, role
}

// Dead reports whether the client has been marked for removal. Dead
// clients are skipped by every matcher/lookup consumer.
func (c *Client) Dead() bool { return c.Flags.Has(wmcore.FlagDead) }

// Geometry, SetGeometry, BorderWidthPx and SizeHintsGet satisfy
// gravity.Tileable so the gravity engine can place a Client without this
// package importing gravity.
func (c *Client) Geometry() wmcore.Rect        { return c.Geom }
func (c *Client) SetGeometry(r wmcore.Rect)    { c.Geom = r }
func (c *Client) BorderWidthPx() int           { return c.BorderWidth }
func (c *Client) SizeHintsGet() wmcore.SizeHints { return c.Hints }
func (c *Client) IsFloating() bool             { return c.Flags.Has(wmcore.FlagFloat) }
func (c *Client) IsFull() bool                 { return c.Flags.Has(wmcore.FlagFull) }
func (c *Client) IsDock() bool                 { return c.Flags.Type() == wmcore.FlagTypeDock }
func (c *Client) IsFixedMode() bool            { return c.Flags.Has(wmcore.FlagFixed) }
func (c *Client) HasResizeMode() bool          { return c.Flags.Has(wmcore.FlagResize) }
func (c *Client) IsZaphod() bool               { return c.Flags.Has(wmcore.FlagZaphod) }
func (c *Client) IsDesktopOrDock() bool {
	t := c.Flags.Type()
	return t == wmcore.FlagTypeDesktop || t == wmcore.FlagTypeDock
}

// TagBits, IsDesktopType, IsUrgent, ScreenIDOf and SetScreenIDTo satisfy
// screen.Client for the configure() pass.
func (c *Client) TagBits() uint32           { return c.Tags }
func (c *Client) IsDesktopType() bool       { return c.Flags.Type() == wmcore.FlagTypeDesktop }
func (c *Client) IsUrgent() bool            { return c.Flags.Has(wmcore.FlagUrgent) }
func (c *Client) ScreenIDOf() wmcore.ID     { return c.ScreenID }
func (c *Client) SetScreenIDTo(id wmcore.ID) { c.ScreenID = id }

// Category classifies the client for the layering comparator:
// desktop, tiled, float, fullscreen, in stacking order.
func (c *Client) Category() layer.Category {
	switch {
	case c.Flags.Has(wmcore.FlagFull):
		return layer.CategoryFull
	case c.Flags.Has(wmcore.FlagFloat):
		return layer.CategoryFloat
	case c.IsDesktopOrDock():
		return layer.CategoryDesktop
	default:
		return layer.CategoryTiled
	}
}

// Visible reports whether the client should be mapped given the
// currently-visible tag set: any tag intersection, or sticky, or desktop
// type.
func (c *Client) Visible(visibleTags uint32) bool {
	if c.Flags.Has(wmcore.FlagStick) || c.TypeFlag() == wmcore.FlagTypeDesktop {
		return true
	}
	return c.Tags&visibleTags != 0
}

// GravityFor returns the per-view gravity id for view index v, or the
// client's default GravityID if the vector has not been sized for v yet.
func (c *Client) GravityFor(v int) wmcore.ID {
	if v < 0 || v >= len(c.Gravities) {
		return c.GravityID
	}
	return c.Gravities[v]
}

// SetGravityFor write-throughs a per-view gravity id, growing the vector
// if needed (views are only ever appended, never inserted mid-vector).
func (c *Client) SetGravityFor(v int, g wmcore.ID) {
	for len(c.Gravities) <= v {
		c.Gravities = append(c.Gravities, c.GravityID)
	}
	c.Gravities[v] = g
}

// ResizeGravities grows or shrinks the per-view gravity vector to n
// entries in place, preserving existing entries, as views are added to or
// removed from the process.
func (c *Client) ResizeGravities(n int, fallback wmcore.ID) {
	if n < 0 {
		n = 0
	}
	if len(c.Gravities) == n {
		return
	}
	if len(c.Gravities) > n {
		c.Gravities = c.Gravities[:n]
		return
	}
	for len(c.Gravities) < n {
		c.Gravities = append(c.Gravities, fallback)
	}
}

// RemoveViewSlot removes the vector entry at view index v, shifting higher
// entries down, mirroring the registry's index-shift contract when a view
// is destroyed.
func (c *Client) RemoveViewSlot(v int) {
	if v < 0 || v >= len(c.Gravities) {
		return
	}
	c.Gravities = append(c.Gravities[:v], c.Gravities[v+1:]...)
}

// RemoveTagBit shifts every tag bit above the removed tag's bit down by
// one position, matching a tag's removal from the registry's dense id
// space.
func (c *Client) RemoveTagBit(removedBit uint32) {
	below := c.Tags & (removedBit - 1)
	above := c.Tags &^ (removedBit | below)
	c.Tags = below | (above >> 1)
}
