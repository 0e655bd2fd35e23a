// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import (
	"tilewm/internal/tag"
	"tilewm/internal/wmcore"
)

// HintReader abstracts every X11 property read the adoption procedure
// needs. internal/xconn and internal/ewmh implement it on top of
// xgbutil's icccm/ewmh/motif helpers; tests use a fake.
type HintReader interface {
	Attributes(w wmcore.Window) (geom wmcore.Rect, overrideRedirect bool, err error)
	ClassHint(w wmcore.Window) (instance, class string)
	Name(w wmcore.Window) string
	Role(w wmcore.Window) string
	Leader(w wmcore.Window) (wmcore.Window, bool)
	Protocols(w wmcore.Window) (takeFocusMsg, closeMsg bool)
	Strut(w wmcore.Window) (left, right, top, bottom int, ok bool)
	WindowType(w wmcore.Window) (wmcore.ClientFlag, bool)
	SizeHints(w wmcore.Window) (wmcore.SizeHints, bool)
	InputHint(w wmcore.Window) bool
	MotifBorder(w wmcore.Window) (hasBorder bool, ok bool)
	NetWMState(w wmcore.Window) wmcore.ClientFlag
	TransientFor(w wmcore.Window) (wmcore.Window, bool)

	SetInputMask(w wmcore.Window)
	SetBorder(w wmcore.Window, width int)
	SaveContext(w wmcore.Window, id wmcore.ID)
	AddToSaveSet(w wmcore.Window)
	SetWithdrawn(w wmcore.Window)
}

// StrutHandler shrinks a screen's work area in response to a client's
// _NET_WM_STRUT: work_geom = base_geom minus accumulated struts.
type StrutHandler interface {
	ApplyStrut(screenID wmcore.ID, left, right, top, bottom int)
}

// CreateHook fires the client_create hook.
type CreateHook interface {
	FireClientCreate(c *Client)
}

// QueueDrainer replays deferred ClientMessages that target a window once
// it becomes a known client.
type QueueDrainer interface {
	DrainFor(w wmcore.Window)
}

// ByLeader resolves a window leader to an already-known client, used to
// inherit a group leader's modes/tags/screen.
type ByLeader interface {
	ClientByWindow(w wmcore.Window) (*Client, bool)
}

// Deps bundles every collaborator Adopt needs, so its signature stays
// readable as the procedure grows.
type Deps struct {
	Reader HintReader
	Struts StrutHandler
	Hooks  CreateHook
	Queue  QueueDrainer
	Lookup ByLeader

	Tags []*tag.Tag

	// DefaultGravity is applied to the per-view gravity vector's initial
	// entries.
	// FocusedGravity, if ok, overrides DefaultGravity with the currently
	// focused client's gravity instead.
	DefaultGravity wmcore.ID
	FocusedGravity wmcore.ID
	HasFocused     bool

	ViewCount int

	UrgentDialogs bool
	ScreenSize    wmcore.Rect
	ScreenID      wmcore.ID

	Focus          FocusProvider
	StatePublisher StatePublisher
	ModeHooks      ModeHook
}

// Adopt runs the full window-adoption procedure for a newly mapped window
// w, returning the new Client (or nil, false if w is override-redirect and
// must be ignored).
func Adopt(id wmcore.ID, w wmcore.Window, d Deps) (*Client, bool) {
	geom, overrideRedirect, err := d.Reader.Attributes(w)
	if overrideRedirect {
		return nil, false
	}
	if err != nil || geom.W < 1 {
		geom.W = 1
	}
	if geom.H < 1 {
		geom.H = 1
	}

	c := &Client{
		ID:        id,
		Window:    w,
		Geom:      geom,
		ScreenID:  d.ScreenID,
		GravityID: d.DefaultGravity,
	}
	if d.HasFocused {
		c.GravityID = d.FocusedGravity
	}
	c.ResizeGravities(d.ViewCount, c.GravityID)

	instance, class := d.Reader.ClassHint(w)
	name := d.Reader.Name(w)
	role := d.Reader.Role(w)
	c.SetIdentity(name, instance, class, role)
	if leader, ok := d.Reader.Leader(w); ok {
		c.Leader = &leader
	}

	d.Reader.SetInputMask(w)
	c.BorderWidth = 1
	d.Reader.SetBorder(w, c.BorderWidth)
	d.Reader.SaveContext(w, id)
	d.Reader.AddToSaveSet(w)
	d.Reader.SetWithdrawn(w)

	takeFocus, closeMsg := d.Reader.Protocols(w)
	if takeFocus {
		c.Flags |= wmcore.FlagFocusTakesMsg
	}
	if closeMsg {
		c.Flags |= wmcore.FlagCloseTakesMsg
	}

	if left, right, top, bottom, ok := d.Reader.Strut(w); ok && d.Struts != nil {
		d.Struts.ApplyStrut(c.ScreenID, left, right, top, bottom)
	}

	modeFloor := c.Flags & wmcore.ModeMask

	typeFlag, hasType := d.Reader.WindowType(w)
	if hasType {
		c.Flags = c.Flags.WithType(typeFlag)
	} else {
		c.Flags = c.Flags.WithType(wmcore.FlagTypeNormal)
	}
	if c.Flags.Type() == wmcore.FlagTypeDialog || c.Flags.Type() == wmcore.FlagTypeSplash {
		c.Flags |= wmcore.FlagFloat | wmcore.FlagCenter
	}

	Retag(c, d.Tags)
	// A tag-assigned gravity applies on every view until the client is
	// re-gravitated per view.
	for i := range c.Gravities {
		c.Gravities[i] = c.GravityID
	}

	if hints, ok := d.Reader.SizeHints(w); ok {
		c.Hints = hints
		if hints.Fixed() {
			c.Flags |= wmcore.FlagFixed | wmcore.FlagFloat
		}
	}
	if leader, ok := d.Reader.Leader(w); ok && d.Lookup != nil {
		if lc, ok := d.Lookup.ClientByWindow(leader); ok {
			c.Flags |= lc.Flags & wmcore.ModeMask
			c.Tags |= lc.Tags
			c.ScreenID = lc.ScreenID
		}
	}
	if !d.Reader.InputHint(w) {
		c.Flags &^= wmcore.FlagInput
	} else {
		c.Flags |= wmcore.FlagInput
	}
	if hasBorder, ok := d.Reader.MotifBorder(w); ok && !hasBorder {
		c.Flags |= wmcore.FlagBorderless
	}

	c.Flags |= d.Reader.NetWMState(w)
	if transient, ok := d.Reader.TransientFor(w); ok {
		c.Flags |= wmcore.FlagFloat
		if d.UrgentDialogs {
			c.Flags |= wmcore.FlagUrgent
		}
		if d.Lookup != nil {
			if pc, ok := d.Lookup.ClientByWindow(transient); ok {
				c.Flags |= pc.Flags & wmcore.ModeMask
			}
		}
	}

	// Replay every mode bit accumulated above through ToggleModes so its
	// entry side effects (border, center offset, fullscreen refusal) fire
	// exactly as they would for a runtime toggle.
	accumulated := c.Flags & wmcore.ModeMask
	c.Flags = (c.Flags &^ wmcore.ModeMask) | modeFloor
	ToggleModes(c, accumulated^modeFloor, true, d.ScreenSize, d.Focus, d.StatePublisher, d.ModeHooks)

	if d.Hooks != nil {
		d.Hooks.FireClientCreate(c)
	}
	if d.Queue != nil {
		d.Queue.DrainFor(w)
	}

	return c, true
}
