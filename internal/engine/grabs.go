// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package engine

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"

	"tilewm/internal/client"
	"tilewm/internal/drag"
	"tilewm/internal/grab"
	"tilewm/internal/gravity"
	"tilewm/internal/hook"
	"tilewm/internal/layer"
	"tilewm/internal/screen"
	"tilewm/internal/wmcore"
	"tilewm/internal/xconn"
)

// screenAtPoint finds the screen whose base geometry contains (x, y),
// falling back to screen 0.
func (e *Engine) screenAtPoint(x, y int) *screen.Screen {
	for _, s := range e.Screens {
		if s.BaseGeom.Contains(x, y) {
			return s
		}
	}
	if len(e.Screens) > 0 {
		return e.Screens[0]
	}
	return nil
}

func (e *Engine) runtime() grab.Runtime {
	return grab.Runtime{
		View:   engineViewRuntime{e},
		Window: engineWindowRuntime{e},
		Subtle: engineSubtleRuntime{e},
	}
}

// onKeyPress advances the keychain state machine on a KeyPress and
// executes the resulting grab, if any.
func (e *Engine) onKeyPress(ctx *xconn.EventContext) {
	if e.Grabs == nil || e.Keychain == nil {
		return
	}
	state := grab.NormalizeState(ctx.State, xconn.NumLockMask, xconn.CapsLockMask)
	scope := e.Keychain.CurrentScope(e.Grabs.All())
	g, found := grab.FindIn(scope, ctx.Code, state)
	modifierOnly := !found && isModifierKeycode(ctx.Code)
	var matched *grab.Grab
	if found {
		matched = g
	}
	before := e.Keychain.State()
	exec := e.Keychain.Press(matched, modifierOnly)
	e.applyKeychainGrabs(before, e.Keychain.State())
	if exec == nil {
		return
	}
	e.dispatchAt(exec, ctx.RootX, ctx.RootY)
}

// applyKeychainGrabs swaps the root grabs on an idle<->armed transition:
// arming ungrabs the normal bindings and installs an AnyKey/AnyModifier
// grab so the chain absorbs the next input; returning to idle restores
// the normal table.
func (e *Engine) applyKeychainGrabs(before, after grab.State) {
	if before == after {
		return
	}
	root := e.Conn.RootWindow()
	e.Conn.UngrabWindow(root)
	if after == grab.StateArmed {
		_ = e.Conn.GrabAnyKey(root)
		return
	}
	_ = e.Conn.GrabWindow(root, e.Grabs)
}

// isModifierKeycode is a conservative placeholder: telling a bare
// modifier press (Shift/Control/Alt/Super) from a real key requires the
// keyboard mapping xgbutil/keybind owns; without it every unmatched press
// is treated as non-modifier input, which correctly cancels an armed
// chain under the "any other input: cancel the chain" default.
func isModifierKeycode(code uint8) bool { return false }

// onButtonPress handles a button grab firing, identical dispatch to
// onKeyPress but keyed on the synthetic button code a mouse button maps
// to, and additionally records the client under the pointer as the
// pending drag target for window-move/resize actions.
func (e *Engine) onButtonPress(ctx *xconn.EventContext) {
	if e.Grabs == nil {
		return
	}
	state := grab.NormalizeState(ctx.State, xconn.NumLockMask, xconn.CapsLockMask)
	g, found := grab.FindIn(e.Grabs.All(), ctx.Code, state)
	if !found {
		return
	}
	e.dragTarget = e.clientUnderPointer(ctx.Window)
	e.pointerX, e.pointerY = ctx.RootX, ctx.RootY
	e.dispatchAt(g, ctx.RootX, ctx.RootY)
}

func (e *Engine) dispatchAt(g *grab.Grab, rootX, rootY int) {
	s := e.screenAtPoint(rootX, rootY)
	var screenID, viewID int
	if s != nil {
		screenID, viewID = int(s.ID), int(s.ViewID)
	}
	_ = grab.Execute(g, e.runtime(), screenID, viewID)
}

func (e *Engine) clientUnderPointer(w wmcore.Window) *client.Client {
	ent, ok := e.Registry.Find(w)
	if !ok {
		return nil
	}
	c, _ := ent.(*client.Client)
	return c
}

// onMotionNotify feeds a live drag session, moving the window with the
// pointer. The session math is the drag package's; applying each
// candidate geometry directly stands in for the XOR outline, which a
// non-reparenting manager can do cheaply since only one window moves.
func (e *Engine) onMotionNotify(ctx *xconn.EventContext) {
	if e.dragSession == nil || e.dragTarget == nil {
		return
	}
	e.dragTarget.SetGeometry(e.dragSession.Update(ctx.RootX, ctx.RootY))
	e.Mapper().(engineMapper).applyGeometry(e.dragTarget)
}

// onButtonRelease ends a live drag session by applying its final
// geometry and releasing the pointer/server grabs held for its duration.
func (e *Engine) onButtonRelease(ctx *xconn.EventContext) {
	if e.dragSession == nil || e.dragTarget == nil {
		e.dragSession, e.dragTarget = nil, nil
		return
	}
	c := e.dragTarget
	policy := gravity.Policy{
		Floating:       c.IsFloating(),
		Full:           c.IsFull(),
		Dock:           c.IsDock(),
		Fixed:          c.IsFixedMode(),
		ResizeMode:     c.HasResizeMode(),
		HonorSizeHints: e.Options.HonorSizeHints,
	}
	final := e.dragSession.Finish(ctx.RootX, ctx.RootY, policy)
	c.SetGeometry(final)
	e.Mapper().(engineMapper).applyGeometry(c)
	e.releaseDragGrabs()
	e.dragSession, e.dragTarget = nil, nil
}

// engineViewRuntime implements grab.ViewRuntime over the live Engine.
type engineViewRuntime struct{ e *Engine }

func (r engineViewRuntime) FocusView(screenID, viewID int) {
	r.e.viewFocus(wmcore.ID(viewID), wmcore.ID(screenID), false)
}

func (r engineViewRuntime) SwapView(screenID, viewID int) {
	r.e.viewFocus(wmcore.ID(viewID), wmcore.ID(screenID), true)
}

// SelectView picks the view id adjacent to the current one on screenID,
// forward or backward, relative to the pointer's screen.
func (r engineViewRuntime) SelectView(screenID int, forward bool) {
	s := r.e.screenByID(wmcore.ID(screenID))
	if s == nil || len(r.e.Views) == 0 {
		return
	}
	n := len(r.e.Views)
	cur := int(s.ViewID)
	var next int
	if forward {
		next = (cur + 1) % n
	} else {
		next = (cur - 1 + n) % n
	}
	r.e.viewFocus(wmcore.ID(next), s.ID, false)
}

func (r engineViewRuntime) JumpScreen(screenID int) {
	c, ok := r.e.focusedClient()
	if !ok {
		return
	}
	s := r.e.screenByID(wmcore.ID(screenID))
	if s == nil {
		return
	}
	c.ScreenID = s.ID
	r.e.Mapper().Arrange(c, s.ID)
}

func (e *Engine) viewFocus(viewID, screenID wmcore.ID, swap bool) {
	hint := e.viewFocusHint(viewID)
	_, hintAlive := e.Registry.Find(hint)
	screen.ViewFocus(e.Screens, e.Views, e.screenClients(), viewID, screenID, swap, true,
		hintAlive, e.Mapper(), stateAdapter{e}, stateAdapter{e}, e.Options.SkipUrgentWarp)
}

func (e *Engine) viewFocusHint(viewID wmcore.ID) wmcore.Window {
	if int(viewID) < 0 || int(viewID) >= len(e.Views) {
		return wmcore.NoWindow
	}
	return e.Views[viewID].FocusHint
}

// RestoreOrNext implements screen.FocusCallback.
func (a stateAdapter) RestoreOrNext(screenID wmcore.ID, hint wmcore.Window, hintAlive bool) {
	if hintAlive {
		if ent, ok := a.e.Registry.Find(hint); ok {
			if c, ok := ent.(*client.Client); ok && c.Visible(a.e.Registry.VisibleTags) {
				a.e.Focus.Focus(c, c, a.e.Registry.VisibleTags, !a.e.Options.SkipWarp)
				return
			}
		}
	}
	a.e.refocuser().FocusNext(screenID)
}

// FireViewFocus implements screen.HookFirer.
func (a stateAdapter) FireViewFocus(v *screen.View, screenID wmcore.ID) {
	a.e.Hooks.Call(hook.KindView, hook.ActionFocus, v)
}

// engineWindowRuntime implements grab.WindowRuntime over the live Engine,
// driving the focused client.
type engineWindowRuntime struct{ e *Engine }

func (r engineWindowRuntime) MoveInteractive() { r.e.startDrag(drag.ModeMove) }

func (r engineWindowRuntime) ResizeInteractive() { r.e.startDrag(drag.ModeResize) }

func (r engineWindowRuntime) ToggleMode(mask uint32) {
	c, ok := r.e.focusedClient()
	if !ok {
		return
	}
	s := r.e.screenByID(c.ScreenIDOf())
	var screenSize wmcore.Rect
	if s != nil {
		screenSize = s.WorkGeom
	}
	client.ToggleModes(c, wmcore.ClientFlag(mask), true, screenSize, stateAdapter{r.e}, stateAdapter{r.e}, stateAdapter{r.e})
	r.e.Mapper().Arrange(c, c.ScreenIDOf())
}

func (r engineWindowRuntime) Stack(dir layer.Direction) {
	clients := r.e.Clients()
	idx := -1
	if c, ok := r.e.focusedClient(); ok {
		for i, cc := range clients {
			if cc == c {
				idx = i
				break
			}
		}
	}
	r.e.restack(idx, dir)
	r.e.publishClientList()
}

func (r engineWindowRuntime) SelectWindow(dir grab.Direction) {
	c, ok := r.e.focusedClient()
	if !ok {
		return
	}
	best := selectByDirection(r.e, c, dir)
	if best == nil {
		return
	}
	r.e.Focus.Focus(best, best, r.e.Registry.VisibleTags, !r.e.Options.SkipWarp)
}

// CycleGravity steps the focused client through the named subsequence of
// gravities in seq (a comma-separated list of gravity quark names, e.g.
// "left,right"), wrapping past the end. If the client's current gravity
// isn't in seq, it starts at the first entry.
func (r engineWindowRuntime) CycleGravity(seq string) {
	c, ok := r.e.focusedClient()
	if !ok {
		return
	}
	names := strings.Split(seq, ",")
	ids := make([]wmcore.ID, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		for _, g := range r.e.Gravities {
			if g.Quark == name {
				ids = append(ids, g.ID)
				break
			}
		}
	}
	if len(ids) == 0 {
		return
	}
	idx := 0
	for i, id := range ids {
		if id == c.GravityID {
			idx = (i + 1) % len(ids)
			break
		}
	}
	c.Flags = c.Flags.Clear(wmcore.FlagFloat | wmcore.FlagFull)
	c.GravityID = ids[idx]
	if s := r.e.screenByID(c.ScreenIDOf()); s != nil {
		c.SetGravityFor(int(s.ViewID), ids[idx])
	}
	r.e.Mapper().Arrange(c, c.ScreenIDOf())
	r.e.Hooks.Call(hook.KindClient, hook.ActionGravity, c)
	stateAdapter{r.e}.PublishClientState(c)
}

func (r engineWindowRuntime) Kill() {
	c, ok := r.e.focusedClient()
	if !ok {
		return
	}
	r.e.closeWindow(c.Window)
}

// engineSubtleRuntime implements grab.SubtleRuntime.
type engineSubtleRuntime struct{ e *Engine }

func (r engineSubtleRuntime) Reload()  { r.e.Registry.Flags |= wmcore.FlagReload }
func (r engineSubtleRuntime) Restart() { r.e.Registry.Flags |= wmcore.FlagRestart }
func (r engineSubtleRuntime) Quit()    { r.e.Registry.Flags &^= wmcore.FlagRun }

// startDrag begins an interactive move/resize session over the focused
// client: it prepares the session state onMotionNotify/onButtonRelease
// drive and takes the pointer/server grabs via takeDragGrabs. Each motion
// applies the candidate geometry to the window directly.
func (e *Engine) startDrag(mode drag.Mode) {
	c, ok := e.focusedClient()
	if !ok {
		return
	}
	s := e.screenByID(c.ScreenIDOf())
	if s == nil {
		return
	}
	e.dragSession = drag.NewSession(mode, c.Geometry(), e.pointerX, e.pointerY,
		c.SizeHintsGet(), c.BorderWidthPx(), s.WorkGeom, e.Options.Snap)
	e.dragTarget = c
	e.takeDragGrabs()
}

// takeDragGrabs grabs the pointer (for motion/release delivery) and the
// server for the session's duration; motion and release events keep
// arriving through the main event loop's handlers while they are held.
func (e *Engine) takeDragGrabs() {
	root := e.Conn.RootWindow()
	xproto.GrabPointer(e.Conn.X.Conn(), false, root,
		uint16(xproto.EventMaskPointerMotion|xproto.EventMaskButtonRelease),
		xproto.GrabModeAsync, xproto.GrabModeAsync, root, xproto.CursorNone, xproto.TimeCurrentTime)
	xproto.GrabServer(e.Conn.X.Conn())
}

func (e *Engine) releaseDragGrabs() {
	xproto.UngrabServer(e.Conn.X.Conn())
	xproto.UngrabPointer(e.Conn.X.Conn(), xproto.TimeCurrentTime)
}

func selectByDirection(e *Engine, from *client.Client, dir grab.Direction) *client.Client {
	fx, fy := from.CenterPoint()
	var best *client.Client
	var bestScore int
	clients := e.Clients()
	for i, c := range clients {
		if c == from || c.Dead() || !c.Visible(e.Registry.VisibleTags) {
			continue
		}
		cx, cy := c.CenterPoint()
		if !inHalfPlane(dir, fx, fy, cx, cy) {
			continue
		}
		dist := absInt(cx-fx) + absInt(cy-fy)
		score := dist - i
		if best == nil || score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func inHalfPlane(dir grab.Direction, fx, fy, cx, cy int) bool {
	switch dir {
	case grab.DirLeft:
		return cx < fx
	case grab.DirRight:
		return cx > fx
	case grab.DirUp:
		return cy < fy
	case grab.DirDown:
		return cy > fy
	}
	return false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
