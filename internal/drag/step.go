// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package drag

import (
	"tilewm/internal/gravity"
	"tilewm/internal/wmcore"
)

// StepMove shifts geom by step pixels in dir, then snaps to screen edges
// when within snap pixels.
func StepMove(geom wmcore.Rect, dir Direction, step int, screen wmcore.Rect, border, snap int) wmcore.Rect {
	switch dir {
	case DirLeft:
		geom.X -= step
	case DirRight:
		geom.X += step
	case DirUp:
		geom.Y -= step
	case DirDown:
		geom.Y += step
	}
	return Snap(geom, screen, border, snap)
}

// StepResize grows geom by the client's increment in dir (incw for
// horizontal directions, inch for vertical), applies the resize refitting
// policy, then snaps to screen edges.
func StepResize(geom wmcore.Rect, dir Direction, hints wmcore.SizeHints, policy gravity.Policy, border int, screen wmcore.Rect, snap int) wmcore.Rect {
	incW, incH := hints.IncW, hints.IncH
	if incW <= 0 {
		incW = 1
	}
	if incH <= 0 {
		incH = 1
	}
	switch dir {
	case DirLeft:
		geom.W -= incW
	case DirRight:
		geom.W += incW
	case DirUp:
		geom.H -= incH
	case DirDown:
		geom.H += incH
	}
	if geom.W < 1 {
		geom.W = 1
	}
	if geom.H < 1 {
		geom.H = 1
	}
	geom = gravity.Resize(geom, hints, border, screen, policy)
	return Snap(geom, screen, border, snap)
}
