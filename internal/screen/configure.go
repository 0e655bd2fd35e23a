// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package screen

import "tilewm/internal/wmcore"

// Client is the minimal view of a client configure() needs.
type Client interface {
	TagBits() uint32
	Sticky() bool
	IsDesktopType() bool
	IsUrgent() bool
	ScreenIDOf() wmcore.ID
	SetScreenIDTo(wmcore.ID)
	Dead() bool
}

// Mapper maps/unmaps a client window and sets its WM state, arranges it,
// and optionally warps the pointer to it. internal/xconn + internal/ewmh
// implement this for the real X connection.
type Mapper interface {
	Map(c Client)
	Unmap(c Client)
	SetUnmapIgnore(c Client, ignore bool)
	SetWithdrawn(c Client)
	SetNormalState(c Client)
	Arrange(c Client, screenID wmcore.ID)
	WarpTo(c Client)
}

// Configure recomputes the registry's visible_tags/visible_views/
// client_tags caches (they are caches, not sources of truth, rebuilt from
// scratch every pass) and maps/arranges or unmaps every client
// accordingly.
func Configure(screens []*Screen, views []*View, clients []Client, mapper Mapper, skipUrgentWarp bool) (visibleTags, visibleViews, clientTags uint32) {
	for _, s := range screens {
		if int(s.ViewID) < len(views) {
			visibleTags |= views[s.ViewID].Tags
		}
		visibleViews |= 1 << uint(s.ViewID)
	}

	for _, c := range clients {
		if c.Dead() {
			continue
		}
		clientTags |= c.TagBits()

		visible := c.Sticky() || c.IsDesktopType() || c.TagBits()&visibleTags != 0
		if !visible {
			mapper.SetUnmapIgnore(c, true)
			mapper.Unmap(c)
			mapper.SetWithdrawn(c)
			continue
		}

		targetScreen := c.ScreenIDOf()
		if !c.Sticky() {
			targetScreen = screenShowing(screens, views, c.TagBits())
		}
		c.SetScreenIDTo(targetScreen)

		mapper.SetUnmapIgnore(c, false)
		mapper.Map(c)
		mapper.Arrange(c, targetScreen)
		mapper.SetNormalState(c)
		if c.IsUrgent() && !skipUrgentWarp {
			mapper.WarpTo(c)
		}
	}
	return visibleTags, visibleViews, clientTags
}

// screenShowing returns the first screen whose current view's tags
// intersect tags, falling back to screen 0.
func screenShowing(screens []*Screen, views []*View, tags uint32) wmcore.ID {
	for _, s := range screens {
		if int(s.ViewID) < len(views) && views[s.ViewID].Tags&tags != 0 {
			return s.ID
		}
	}
	if len(screens) > 0 {
		return screens[0].ID
	}
	return 0
}
