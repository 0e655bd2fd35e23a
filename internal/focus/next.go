// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package focus

import "tilewm/internal/wmcore"

// Resolver looks a history window back up to its live Client, since the
// ring stores raw window ids that may have outlived their client.
type Resolver interface {
	Resolve(w wmcore.Window) (Client, bool)
}

// Candidate bundles a Client with the visibility check next() needs,
// since Client alone does not carry Visible.
type Candidate interface {
	Client
	VisibilityChecker
}

// Next implements `next(screen_id, jump)` in its
// documented 3 passes:
//  1. walk the history ring; first alive+visible client on this screen
//     that is not focus[0] wins.
//  2. walk the stacking array backwards (top-first); first alive+visible
//     client on this screen that is not focus[0] wins.
//  3. if jump and more than one screen, repeat pass 2 across all screens.
//     Else return nothing.
//
// stacking is bottom-first per-screen order; each entry's ScreenIDOf
// lets pass 3 search every screen but this one.
func (e *Engine) Next(screenID wmcore.ID, jump bool, resolver Resolver, visibleTags uint32, stacking []Candidate, screenCount int) (Client, bool) {
	current := e.history[0]

	// Pass 1: history ring.
	for i := 1; i < HistorySize; i++ {
		w := e.history[i]
		if w == 0 || w == current {
			continue
		}
		c, ok := resolver.Resolve(w)
		if !ok || c.Dead() {
			continue
		}
		if c.ScreenIDOf() != screenID {
			continue
		}
		vc, ok := c.(VisibilityChecker)
		if ok && !vc.Visible(visibleTags) {
			continue
		}
		return c, true
	}

	// Pass 2: stacking array, top-first, same screen.
	if c, ok := topFirstOnScreen(stacking, screenID, current, visibleTags); ok {
		return c, true
	}

	// Pass 3: jump across screens.
	if jump && screenCount > 1 {
		for i := len(stacking) - 1; i >= 0; i-- {
			cand := stacking[i]
			if cand.ScreenIDOf() == screenID {
				continue
			}
			if cand.Dead() || cand.EntityWindow() == current {
				continue
			}
			if !cand.Visible(visibleTags) {
				continue
			}
			return cand, true
		}
	}

	return nil, false
}

func topFirstOnScreen(stacking []Candidate, screenID wmcore.ID, current wmcore.Window, visibleTags uint32) (Client, bool) {
	for i := len(stacking) - 1; i >= 0; i-- {
		cand := stacking[i]
		if cand.ScreenIDOf() != screenID {
			continue
		}
		if cand.Dead() || cand.EntityWindow() == current {
			continue
		}
		if !cand.Visible(visibleTags) {
			continue
		}
		return cand, true
	}
	return nil, false
}
