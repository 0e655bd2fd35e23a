// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package xconn

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"

	"tilewm/internal/wmcore"
)

// HintReader implements client.HintReader over a live xgbutil connection.
// It is the production collaborator main.go wires into client.Deps;
// internal/client itself stays free of any X11 import.
type HintReader struct {
	X *xgbutil.XUtil
}

func toWin(w wmcore.Window) xproto.Window { return xproto.Window(w) }

func (h HintReader) Attributes(w wmcore.Window) (wmcore.Rect, bool, error) {
	attr, err := xproto.GetWindowAttributes(h.X.Conn(), toWin(w)).Reply()
	overrideRedirect := err == nil && attr.OverrideRedirect
	geomReply, gerr := xproto.GetGeometry(h.X.Conn(), xproto.Drawable(toWin(w))).Reply()
	if gerr != nil {
		if err == nil {
			err = gerr
		}
		return wmcore.Rect{}, overrideRedirect, err
	}
	return wmcore.Rect{
		X: int(geomReply.X), Y: int(geomReply.Y),
		W: int(geomReply.Width), H: int(geomReply.Height),
	}, overrideRedirect, err
}

func (h HintReader) ClassHint(w wmcore.Window) (instance, class string) {
	ch, err := icccm.WmClassGet(h.X, toWin(w))
	if err != nil || ch == nil {
		return "", ""
	}
	return ch.Instance, ch.Class
}

func (h HintReader) Name(w wmcore.Window) string {
	if name, err := ewmh.WmNameGet(h.X, toWin(w)); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(h.X, toWin(w)); err == nil {
		return name
	}
	return ""
}

func (h HintReader) Role(w wmcore.Window) string {
	reply, err := xproto.GetProperty(h.X.Conn(), false, toWin(w),
		mustAtom(h.X, "WM_WINDOW_ROLE"), xproto.GetPropertyTypeAny, 0, 1<<20).Reply()
	if err != nil || reply.ValueLen == 0 {
		return ""
	}
	return string(reply.Value)
}

func (h HintReader) Leader(w wmcore.Window) (wmcore.Window, bool) {
	reply, err := xproto.GetProperty(h.X.Conn(), false, toWin(w),
		mustAtom(h.X, "WM_CLIENT_LEADER"), xproto.AtomWindow, 0, 1).Reply()
	if err != nil || reply.ValueLen == 0 {
		return 0, false
	}
	return wmcore.Window(xproto.Window(reply.Value[0]) |
		xproto.Window(reply.Value[1])<<8 |
		xproto.Window(reply.Value[2])<<16 |
		xproto.Window(reply.Value[3])<<24), true
}

func (h HintReader) Protocols(w wmcore.Window) (takeFocusMsg, closeMsg bool) {
	protocols, err := icccm.WmProtocolsGet(h.X, toWin(w))
	if err != nil {
		return false, false
	}
	for _, p := range protocols {
		switch p {
		case "WM_TAKE_FOCUS":
			takeFocusMsg = true
		case "WM_DELETE_WINDOW":
			closeMsg = true
		}
	}
	return takeFocusMsg, closeMsg
}

func (h HintReader) Strut(w wmcore.Window) (left, right, top, bottom int, ok bool) {
	s, err := ewmh.WmStrutGet(h.X, toWin(w))
	if err != nil {
		return 0, 0, 0, 0, false
	}
	return clampStrut(s.Left), clampStrut(s.Right), clampStrut(s.Top), clampStrut(s.Bottom), true
}

// clampStrut guards against a misbehaving client's oversized strut.
func clampStrut(v uint) int {
	const max = 1 << 14
	if v > max {
		return max
	}
	return int(v)
}

func (h HintReader) WindowType(w wmcore.Window) (wmcore.ClientFlag, bool) {
	types, err := ewmh.WmWindowTypeGet(h.X, toWin(w))
	if err != nil || len(types) == 0 {
		return 0, false
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DESKTOP":
			return wmcore.FlagTypeDesktop, true
		case "_NET_WM_WINDOW_TYPE_DOCK":
			return wmcore.FlagTypeDock, true
		case "_NET_WM_WINDOW_TYPE_TOOLBAR":
			return wmcore.FlagTypeToolbar, true
		case "_NET_WM_WINDOW_TYPE_SPLASH":
			return wmcore.FlagTypeSplash, true
		case "_NET_WM_WINDOW_TYPE_DIALOG":
			return wmcore.FlagTypeDialog, true
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return wmcore.FlagTypeNormal, true
		}
	}
	return 0, false
}

func (h HintReader) SizeHints(w wmcore.Window) (wmcore.SizeHints, bool) {
	hints, err := icccm.WmNormalHintsGet(h.X, toWin(w))
	if err != nil || hints == nil {
		return wmcore.SizeHints{}, false
	}
	out := wmcore.SizeHints{}
	if hints.Flags&icccm.SizeHintPMinSize != 0 {
		out.MinW, out.MinH = int(hints.MinWidth), int(hints.MinHeight)
	}
	if hints.Flags&icccm.SizeHintPMaxSize != 0 {
		out.MaxW, out.MaxH = int(hints.MaxWidth), int(hints.MaxHeight)
	}
	if hints.Flags&icccm.SizeHintPResizeInc != 0 {
		out.IncW, out.IncH = int(hints.WidthInc), int(hints.HeightInc)
	}
	if hints.Flags&icccm.SizeHintPBaseSize != 0 {
		out.BaseW, out.BaseH = int(hints.BaseWidth), int(hints.BaseHeight)
	}
	if hints.Flags&icccm.SizeHintPAspect != 0 {
		out.MinAspect = ratio(hints.MinAspectNum, hints.MinAspectDen)
		out.MaxAspect = ratio(hints.MaxAspectNum, hints.MaxAspectDen)
	}
	return out, true
}

func ratio(num, den uint) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func (h HintReader) InputHint(w wmcore.Window) bool {
	hints, err := icccm.WmHintsGet(h.X, toWin(w))
	if err != nil || hints == nil || hints.Flags&icccm.HintInput == 0 {
		return true // no WM_HINTS input hint: default true
	}
	return hints.Input == 1
}

// Urgent reads WM_HINTS' urgency flag.
func (h HintReader) Urgent(w wmcore.Window) bool {
	hints, err := icccm.WmHintsGet(h.X, toWin(w))
	return err == nil && hints != nil && hints.Flags&icccm.HintUrgency != 0
}

func (h HintReader) MotifBorder(w wmcore.Window) (hasBorder bool, ok bool) {
	m, err := motif.WmHintsGet(h.X, toWin(w))
	if err != nil || m == nil {
		return false, false
	}
	if m.Flags&motif.HintDecorations == 0 {
		return false, false
	}
	return motif.Decor(m), true
}

func (h HintReader) NetWMState(w wmcore.Window) wmcore.ClientFlag {
	states, err := ewmh.WmStateGet(h.X, toWin(w))
	if err != nil {
		return 0
	}
	var flags wmcore.ClientFlag
	for _, s := range states {
		switch s {
		case "_NET_WM_STATE_FULLSCREEN":
			flags |= wmcore.FlagFull
		case "_NET_WM_STATE_ABOVE":
			flags |= wmcore.FlagFloat
		case "_NET_WM_STATE_STICKY":
			flags |= wmcore.FlagStick
		case "_NET_WM_STATE_DEMANDS_ATTENTION":
			flags |= wmcore.FlagUrgent
		}
	}
	return flags
}

func (h HintReader) TransientFor(w wmcore.Window) (wmcore.Window, bool) {
	win, err := icccm.WmTransientForGet(h.X, toWin(w))
	if err != nil || win == 0 {
		return 0, false
	}
	return wmcore.Window(win), true
}

func (h HintReader) SetInputMask(w wmcore.Window) {
	xproto.ChangeWindowAttributes(h.X.Conn(), toWin(w), xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskEnterWindow | xproto.EventMaskPropertyChange |
			xproto.EventMaskStructureNotify | xproto.EventMaskFocusChange),
	})
}

func (h HintReader) SetBorder(w wmcore.Window, width int) {
	xproto.ConfigureWindow(h.X.Conn(), toWin(w), xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(width)})
}

func (h HintReader) SaveContext(w wmcore.Window, id wmcore.ID) {
	// The registry's own window->id map is the save-context; nothing
	// further needs writing to the X server here.
}

func (h HintReader) AddToSaveSet(w wmcore.Window) {
	xproto.ChangeSaveSet(h.X.Conn(), xproto.SetModeInsert, toWin(w))
}

func (h HintReader) SetWithdrawn(w wmcore.Window) {
	icccm.WmStateSet(h.X, toWin(w), &icccm.WmState{State: icccm.StateWithdrawn})
}

func mustAtom(X *xgbutil.XUtil, name string) xproto.Atom {
	a, err := xproto.InternAtom(X.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0
	}
	return a.Atom
}
