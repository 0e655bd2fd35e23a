// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package screen implements physical outputs and the tag-sets ("views")
// assigned to them.
package screen

import "tilewm/internal/wmcore"

// ViewFlag mirrors the view's {icon, icon_only, dynamic} flag set.
type ViewFlag uint8

const (
	ViewIcon ViewFlag = 1 << iota
	ViewIconOnly
	ViewDynamic
)

// View is a named tag-set; exactly one view is current per screen.
type View struct {
	ID    wmcore.ID
	Name  string
	Tags  uint32
	Icon  string
	StyleID *wmcore.ID
	Flags ViewFlag

	// FocusHint caches the most recently focused window on this view.
	FocusHint wmcore.Window
}

func (v *View) EntityID() wmcore.ID         { return v.ID }
func (v *View) EntityWindow() wmcore.Window { return wmcore.NoWindow }

// Dynamic reports whether this view must disappear from panels when no
// client currently carries a matching tag.
func (v *View) Dynamic() bool { return v.Flags&ViewDynamic != 0 }

// ShouldShow reports whether a dynamic view should currently be listed,
// given the registry's client_tags bitmask.
func (v *View) ShouldShow(clientTags uint32) bool {
	if !v.Dynamic() {
		return true
	}
	return v.Tags&clientTags != 0
}
