// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package focus implements the focus history ring and the focus/next
// operations.
package focus

import "tilewm/internal/wmcore"

// HistorySize is the fixed size of the focus history ring.
const HistorySize = 5

// Client is the slice of the client model the focus engine needs.
type Client interface {
	EntityWindow() wmcore.Window
	Dead() bool
	IsDesktopOrDock() bool
	ScreenIDOf() wmcore.ID
	TagBits() uint32
	ClearUrgent()
	AdvertisesTakeFocusMsg() bool
	CenterPoint() (x, y int)
}

// VisibilityChecker reports whether a client is currently mapped given the
// process-wide visible-tags bitmask, mirroring client.Client.Visible.
type VisibilityChecker interface {
	Visible(visibleTags uint32) bool
}

// BorderSetter applies the inactive/active border color, skipped for
// desktop/dock clients.
type BorderSetter interface {
	SetBorderActive(c Client, active bool)
}

// InputFocuser performs the low-level focus transfer: a WM_TAKE_FOCUS
// ClientMessage when the client advertises it, else XSetInputFocus with
// RevertToPointerRoot.
type InputFocuser interface {
	TakeFocusMessage(c Client)
	SetInputFocusPointerRoot(c Client)
}

// MouseGrabInstaller installs the click-to-focus mouse grabs on the newly
// focused client.
type MouseGrabInstaller interface {
	InstallMouseGrabs(c Client)
}

// ViewHintSetter caches the most recently focused window per view.
type ViewHintSetter interface {
	SetFocusHint(screenID wmcore.ID, window wmcore.Window)
}

// HookEmitter fires the client_focus hook.
type HookEmitter interface {
	EmitClientFocus(c Client)
}

// Warper moves the pointer to a client's center when warp is requested and
// globally enabled.
type Warper interface {
	WarpTo(x, y int)
}

// Engine owns the focus history ring and its collaborators.
type Engine struct {
	history        [HistorySize]wmcore.Window
	Border         BorderSetter
	Input          InputFocuser
	MouseGrabs     MouseGrabInstaller
	ViewHints      ViewHintSetter
	Hooks          HookEmitter
	Warp           Warper
	GlobalWarp     bool
	previousClient Client
}

// NewEngine returns an empty-history focus engine.
func NewEngine() *Engine { return &Engine{} }

// Current returns the window believed to have input focus, focus[0].
func (e *Engine) Current() wmcore.Window { return e.history[0] }

// History returns the ring contents, most-recent first, for inspection or
// for the next() passes.
func (e *Engine) History() []wmcore.Window { return e.history[:] }

// Focus implements `focus(client, warp)`.
func (e *Engine) Focus(c Client, visible VisibilityChecker, visibleTags uint32, warp bool) {
	if c.Dead() || (visible != nil && !visible.Visible(visibleTags)) {
		return
	}

	c.ClearUrgent()

	if e.previousClient != nil && !e.previousClient.IsDesktopOrDock() && e.Border != nil {
		e.Border.SetBorderActive(e.previousClient, false)
	}

	if e.Input != nil {
		if c.AdvertisesTakeFocusMsg() {
			e.Input.TakeFocusMessage(c)
		} else {
			e.Input.SetInputFocusPointerRoot(c)
		}
	}

	for i := HistorySize - 1; i > 0; i-- {
		e.history[i] = e.history[i-1]
	}
	e.history[0] = c.EntityWindow()
	e.previousClient = c

	if e.MouseGrabs != nil {
		e.MouseGrabs.InstallMouseGrabs(c)
	}
	if !c.IsDesktopOrDock() && e.Border != nil {
		e.Border.SetBorderActive(c, true)
	}

	if e.ViewHints != nil {
		e.ViewHints.SetFocusHint(c.ScreenIDOf(), c.EntityWindow())
	}

	if e.Hooks != nil {
		e.Hooks.EmitClientFocus(c)
	}
	if warp && e.GlobalWarp && e.Warp != nil {
		x, y := c.CenterPoint()
		e.Warp.WarpTo(x, y)
	}
}
