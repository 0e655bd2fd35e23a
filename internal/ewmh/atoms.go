// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package ewmh

// Private atom names for the subtle_* properties: gravity list, visible
// tags/views, per-screen panels and views, color palette, and data. These
// are never looked up through xgbutil's ewmh package since they are not
// part of the EWMH spec it implements; Surface interns and writes them
// directly through xprop.
const (
	AtomGravityList   = "SUBTLE_GRAVITY_LIST"
	AtomVisibleTags   = "SUBTLE_VISIBLE_TAGS"
	AtomVisibleViews  = "SUBTLE_VISIBLE_VIEWS"
	AtomScreenPanels  = "SUBTLE_SCREEN_PANELS"
	AtomScreenViews   = "SUBTLE_SCREEN_VIEWS"
	AtomColorPalette  = "SUBTLE_COLOR_PALETTE"
	AtomData          = "SUBTLE_DATA"
	AtomWindowTags    = "SUBTLE_WINDOW_TAGS"
	AtomWindowGravity = "SUBTLE_WINDOW_GRAVITY"
	AtomWindowScreen  = "SUBTLE_WINDOW_SCREEN"
)

// privateAtoms lists every subtle_* atom Surface interns at startup, so
// Reload can re-resolve them after a scripted collaborator reload without
// repeating this list by hand.
var privateAtoms = []string{
	AtomGravityList,
	AtomVisibleTags,
	AtomVisibleViews,
	AtomScreenPanels,
	AtomScreenViews,
	AtomColorPalette,
	AtomData,
	AtomWindowTags,
	AtomWindowGravity,
	AtomWindowScreen,
}
