// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package engine

import (
	"github.com/BurntSushi/xgb/xproto"

	"tilewm/internal/client"
	"tilewm/internal/focus"
	"tilewm/internal/hook"
	"tilewm/internal/wmcore"
)

// focusAdapter wires focus.Engine's collaborator interfaces to the live
// connection, the same way engineCloser/engineMapper wire client.Closer/
// screen.Mapper.
type focusAdapter struct{ e *Engine }

// WireFocus points e.Focus's collaborator interfaces at this Engine's
// focusAdapter and sets GlobalWarp from e.Options, so a caller only needs
// to build e.Focus with focus.NewEngine() and then call this once.
func (e *Engine) WireFocus() {
	a := focusAdapter{e}
	e.Focus.Input = a
	e.Focus.MouseGrabs = a
	e.Focus.ViewHints = a
	e.Focus.Hooks = a
	e.Focus.Warp = a
	e.Focus.Border = a
	e.Focus.GlobalWarp = !e.Options.SkipWarp
}

// SetBorderActive swaps the window's border pixel between the active and
// inactive style colors.
func (a focusAdapter) SetBorderActive(c focus.Client, active bool) {
	pixel := a.e.Options.BorderInactivePixel
	if active {
		pixel = a.e.Options.BorderActivePixel
	}
	xproto.ChangeWindowAttributes(a.e.Conn.X.Conn(), xproto.Window(c.EntityWindow()),
		xproto.CwBorderPixel, []uint32{pixel})
}

func (a focusAdapter) TakeFocusMessage(c focus.Client) {
	win := xproto.Window(c.EntityWindow())
	protocols := a.e.Surface.Atom("WM_PROTOCOLS")
	takeFocus := a.e.Surface.Atom("WM_TAKE_FOCUS")
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   protocols,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(takeFocus), uint32(xproto.TimeCurrentTime), 0, 0, 0}),
	}
	xproto.SendEvent(a.e.Conn.X.Conn(), false, win, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (a focusAdapter) SetInputFocusPointerRoot(c focus.Client) {
	xproto.SetInputFocus(a.e.Conn.X.Conn(), xproto.InputFocusPointerRoot,
		xproto.Window(c.EntityWindow()), xproto.TimeCurrentTime)
}

// InstallMouseGrabs reinstalls the click-to-focus button grabs on the
// newly focused client; a repeat GrabButton request on an already-grabbed
// window is a protocol no-op, so this is safe to call on every focus
// change.
func (a focusAdapter) InstallMouseGrabs(c focus.Client) {
	if a.e.Grabs == nil {
		return
	}
	_ = a.e.Conn.GrabWindow(xproto.Window(c.EntityWindow()), a.e.Grabs)
}

func (a focusAdapter) SetFocusHint(screenID wmcore.ID, window wmcore.Window) {
	s := a.e.screenByID(screenID)
	if s == nil {
		return
	}
	for _, v := range a.e.Views {
		if v.ID == s.ViewID {
			v.FocusHint = window
			return
		}
	}
}

func (a focusAdapter) EmitClientFocus(c focus.Client) {
	// Focus just cleared the client's urgent bit; drop its tags from
	// urgent_tags in the same transition.
	a.e.updateUrgentTags()
	cc, ok := a.e.Registry.Find(c.EntityWindow())
	if !ok {
		return
	}
	if subject, ok := cc.(*client.Client); ok {
		a.e.Hooks.Call(hook.KindClient, hook.ActionFocus, subject)
	}
}

func (a focusAdapter) WarpTo(x, y int) {
	root := a.e.Conn.RootWindow()
	xproto.WarpPointer(a.e.Conn.X.Conn(), 0, root, 0, 0, 0, 0, int16(x), int16(y))
}
