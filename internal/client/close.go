// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import "tilewm/internal/wmcore"

// Closer sends or enforces window destruction.
type Closer interface {
	SendDeleteWindow(w wmcore.Window)
	KillClient(w wmcore.Window)
}

// Retiler re-tiles the clients remaining under a gravity/screen after a
// close.
type Retiler interface {
	Retile(gravityID, screenID wmcore.ID)
}

// Refocuser picks and focuses the next client on a screen after a close.
type Refocuser interface {
	FocusNext(screenID wmcore.ID)
}

// Close implements the window-kill operation. If the client advertises
// close-takes-msg it is asked to close itself via WM_DELETE_WINDOW and is
// *not* removed from the registry yet - removal happens when the
// subsequent DestroyNotify/UnmapNotify arrives. Otherwise it is killed
// and removed immediately.
func Close(c *Client, closer Closer, onRemoved func(c *Client)) {
	if c.Flags.Has(wmcore.FlagCloseTakesMsg) {
		closer.SendDeleteWindow(c.Window)
		return
	}
	closer.KillClient(c.Window)
	if onRemoved != nil {
		onRemoved(c)
	}
}

// Removed finalizes bookkeeping after a client's window has actually gone
// away (DestroyNotify/UnmapNotify or a post-SendDeleteWindow kill): retile
// its old (gravity, screen) slot and refocus the screen it was on.
func Removed(c *Client, retile Retiler, refocus Refocuser) {
	if retile != nil {
		retile.Retile(c.GravityID, c.ScreenID)
	}
	if refocus != nil {
		refocus.FocusNext(c.ScreenID)
	}
}
