// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
)

// SupportedHints is the fixed atom-name table interned at startup and
// published as the _NET_SUPPORTED list.
var SupportedHints = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_STICKY",
	"_NET_WM_STATE_DEMANDS_ATTENTION",
	"_NET_WM_DESKTOP",
	"_NET_WM_WINDOW_TYPE",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_DESKTOP_NAMES",
	"_NET_DESKTOP_GEOMETRY",
	"_NET_DESKTOP_VIEWPORT",
	"_NET_CURRENT_DESKTOP",
	"_NET_WORKAREA",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_CLIENT_LIST_STACKING",
	"_NET_FRAME_EXTENTS",
}

// Surface wraps an xgbutil connection and publishes the window manager's
// state through the standard EWMH/ICCCM properties, plus the private
// subtle_* properties custom to this core.
type Surface struct {
	X           *xgbutil.XUtil
	root        xproto.Window
	checkWindow xproto.Window
	atoms       map[string]xproto.Atom
}

// NewSurface interns the fixed atom table (public and private) and
// creates the supporting-wm-check window.
func NewSurface(X *xgbutil.XUtil, wmName string) (*Surface, error) {
	s := &Surface{X: X, root: X.RootWin(), atoms: make(map[string]xproto.Atom)}

	for _, name := range SupportedHints {
		a, err := xprop.Atm(X, name)
		if err != nil {
			return nil, err
		}
		s.atoms[name] = a
	}
	for _, name := range privateAtoms {
		a, err := xprop.Atm(X, name)
		if err != nil {
			return nil, err
		}
		s.atoms[name] = a
	}

	check, err := xwindowCreateCheckWindow(X)
	if err != nil {
		return nil, err
	}
	s.checkWindow = check

	if err := ewmh.SupportedSet(X, SupportedHints); err != nil {
		return nil, err
	}
	if err := ewmh.SupportingWmCheckSet(X, s.root, s.checkWindow); err != nil {
		return nil, err
	}
	if err := ewmh.SupportingWmCheckSet(X, s.checkWindow, s.checkWindow); err != nil {
		return nil, err
	}
	if err := ewmh.WmNameSet(X, s.checkWindow, wmName); err != nil {
		return nil, err
	}
	return s, nil
}

// GetProperty abstracts the raw property read.
func (s *Surface) GetProperty(win xproto.Window, propType string) (*xproto.GetPropertyReply, error) {
	return xprop.GetProperty(s.X, win, propType)
}

// Atom resolves an atom by name, preferring the fixed table interned at
// startup and falling back to interning it on first use.
func (s *Surface) Atom(name string) xproto.Atom {
	if a, ok := s.atoms[name]; ok {
		return a
	}
	a, err := xprop.Atm(s.X, name)
	if err != nil {
		return 0
	}
	s.atoms[name] = a
	return a
}

// SetCards abstracts a CARDINAL-array property write.
func (s *Surface) SetCards(win xproto.Window, atom string, values []uint) error {
	data := make([]byte, 0, 4*len(values))
	for _, v := range values {
		data = append(data, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return xprop.ChangeProp(s.X, win, 32, atom, "CARDINAL", data)
}

// SetStrings abstracts a UTF8_STRING-list property write.
func (s *Surface) SetStrings(win xproto.Window, atom string, list []string) error {
	var data []byte
	for _, str := range list {
		data = append(data, []byte(str)...)
		data = append(data, 0)
	}
	return xprop.ChangeProp(s.X, win, 8, atom, "UTF8_STRING", data)
}

// SetWindows abstracts a WINDOW-array property write.
func (s *Surface) SetWindows(win xproto.Window, atom string, list []xproto.Window) error {
	data := make([]byte, 0, 4*len(list))
	for _, w := range list {
		data = append(data, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return xprop.ChangeProp(s.X, win, 32, atom, "WINDOW", data)
}

// PublishRootState publishes the root properties: client lists, desktop
// bookkeeping, workarea, active window.
func (s *Surface) PublishRootState(state RootState) error {
	clients := make([]xproto.Window, len(state.ClientList))
	copy(clients, state.ClientList)
	if err := ewmh.ClientListSet(s.X, clients); err != nil {
		return err
	}
	stacking := make([]xproto.Window, len(state.ClientListStacking))
	copy(stacking, state.ClientListStacking)
	if err := ewmh.ClientListStackingSet(s.X, stacking); err != nil {
		return err
	}
	if err := ewmh.NumberOfDesktopsSet(s.X, uint(state.DesktopCount)); err != nil {
		return err
	}
	if err := ewmh.DesktopNamesSet(s.X, state.DesktopNames); err != nil {
		return err
	}
	if err := ewmh.CurrentDesktopSet(s.X, uint(state.CurrentDesktop)); err != nil {
		return err
	}
	if err := ewmh.DesktopGeometrySet(s.X, &ewmh.DesktopGeometry{
		Width: int(state.GeomWidth), Height: int(state.GeomHeight),
	}); err != nil {
		return err
	}
	if err := ewmh.DesktopViewportSet(s.X, zeroViewports(state.DesktopCount)); err != nil {
		return err
	}
	if err := ewmh.WorkareaSet(s.X, state.Workareas); err != nil {
		return err
	}
	if err := ewmh.ActiveWindowSet(s.X, state.ActiveWindow); err != nil {
		return err
	}
	return s.publishPrivateState(state)
}

func (s *Surface) publishPrivateState(state RootState) error {
	if err := s.SetStrings(s.root, AtomGravityList, state.GravityNames); err != nil {
		return err
	}
	if err := s.SetCards(s.root, AtomVisibleTags, []uint{uint(state.VisibleTags)}); err != nil {
		return err
	}
	if err := s.SetCards(s.root, AtomVisibleViews, []uint{uint(state.VisibleViews)}); err != nil {
		return err
	}
	return nil
}

func zeroViewports(n int) []ewmh.DesktopViewport {
	vp := make([]ewmh.DesktopViewport, n)
	return vp
}

// RootState is the root-window publish snapshot PublishRootState writes
// out in one pass.
type RootState struct {
	ClientList         []xproto.Window
	ClientListStacking []xproto.Window
	DesktopCount       int
	DesktopNames       []string
	CurrentDesktop     int
	GeomWidth          int
	GeomHeight         int
	Workareas          []ewmh.Workarea
	ActiveWindow       xproto.Window
	GravityNames       []string
	VisibleTags        uint32
	VisibleViews       uint32
}

// PublishClientState writes the per-client properties: WM_STATE,
// _NET_WM_STATE, _NET_WM_DESKTOP, _NET_FRAME_EXTENTS, plus the private
// per-client subtle_* properties.
func (s *Surface) PublishClientState(win xproto.Window, flags []ClientMode, desktop int, borderWidth int, tags uint32, gravity int, screen int) error {
	names := make([]string, 0, len(flags))
	for _, m := range flags {
		if name, ok := stateAtomName(m); ok {
			names = append(names, name)
		}
	}
	if err := ewmh.WmStateSet(s.X, win, names); err != nil {
		return err
	}
	if err := ewmh.WmDesktopSet(s.X, win, uint(desktop)); err != nil {
		return err
	}
	if err := icccm.WmStateSet(s.X, win, &icccm.WmState{State: icccm.StateNormal}); err != nil {
		return err
	}
	if err := ewmh.FrameExtentsSet(s.X, win, &ewmh.FrameExtents{
		Left: borderWidth, Right: borderWidth, Top: borderWidth, Bottom: borderWidth,
	}); err != nil {
		return err
	}
	if err := s.SetCards(win, AtomWindowTags, []uint{uint(tags)}); err != nil {
		return err
	}
	if err := s.SetCards(win, AtomWindowGravity, []uint{uint(gravity)}); err != nil {
		return err
	}
	if err := s.SetCards(win, AtomWindowScreen, []uint{uint(screen)}); err != nil {
		return err
	}
	return nil
}

func stateAtomName(m ClientMode) (string, bool) {
	switch m {
	case ModeFull:
		return "_NET_WM_STATE_FULLSCREEN", true
	case ModeZaphod:
		return "_NET_WM_STATE_ABOVE", true
	case ModeStick:
		return "_NET_WM_STATE_STICKY", true
	case ModeUrgent:
		return "_NET_WM_STATE_DEMANDS_ATTENTION", true
	}
	return "", false
}
