// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package screen

import "tilewm/internal/wmcore"

// FocusCallback resumes focus on a window, e.g. restoring a view's
// focus_hint, or picks the next focusable client via internal/focus.
type FocusCallback interface {
	RestoreOrNext(screenID wmcore.ID, hint wmcore.Window, hintAlive bool)
}

// HookFirer fires the view_focus hook.
type HookFirer interface {
	FireViewFocus(v *View, screenID wmcore.ID)
}

// ViewFocus implements view.focus(view, screen_id, swap,
// do_focus) operation. screens is searched for any screen other than
// screenID already showing viewID so the swap behavior can exchange the
// two screens' view ids.
func ViewFocus(screens []*Screen, views []*View, clients []Client, viewID, screenID wmcore.ID, swap, doFocus bool, hintAlive bool, mapper Mapper, cb FocusCallback, hooks HookFirer, skipUrgentWarp bool) {
	var target *Screen
	var other *Screen
	for _, s := range screens {
		if s.ID == screenID {
			target = s
		}
		if s.ViewID == viewID && s.ID != screenID {
			other = s
		}
	}
	if target == nil {
		return
	}

	if swap && other != nil {
		target.ViewID, other.ViewID = other.ViewID, target.ViewID
	} else {
		target.ViewID = viewID
	}

	_, _, _ = Configure(screens, views, clients, mapper, skipUrgentWarp)

	if doFocus && cb != nil && int(viewID) < len(views) {
		v := views[viewID]
		cb.RestoreOrNext(screenID, v.FocusHint, hintAlive)
	}
	if hooks != nil && int(viewID) < len(views) {
		hooks.FireViewFocus(views[viewID], screenID)
	}
}
