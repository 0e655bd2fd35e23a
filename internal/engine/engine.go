// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package engine

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"tilewm/internal/client"
	"tilewm/internal/drag"
	"tilewm/internal/event"
	"tilewm/internal/ewmh"
	"tilewm/internal/focus"
	"tilewm/internal/gravity"
	"tilewm/internal/grab"
	"tilewm/internal/hook"
	"tilewm/internal/layer"
	"tilewm/internal/screen"
	"tilewm/internal/tag"
	"tilewm/internal/wmcore"
	"tilewm/internal/xconn"
)

// Engine owns the single running process's mutable state and is the
// production implementation of every collaborator interface
// internal/client, internal/screen, internal/grab and internal/focus
// define.
type Engine struct {
	Conn    *xconn.Conn
	Surface *ewmh.Surface
	Hooks   *hook.Bus

	Registry  *wmcore.Registry
	Gravities []*gravity.Gravity
	Tags      []*tag.Tag
	Views     []*screen.View
	Screens   []*screen.Screen
	Grabs     *grab.Table
	Keychain  *grab.Keychain

	Focus *focus.Engine

	DisplayBounds wmcore.Rect

	Options EngineOptions

	Queue event.Queue

	unmapIgnore map[wmcore.Window]bool

	// Drag controller state: dragSession is the live
	// interactive move/resize session, if any; dragTarget is the client it
	// applies to; pointerX/pointerY is the most recently observed pointer
	// position, seeded from whichever button press started the session.
	dragSession *drag.Session
	dragTarget  *client.Client
	pointerX    int
	pointerY    int
}

// EngineOptions mirrors the process-wide run flags this core reads from
// config.Options.
type EngineOptions struct {
	Tiling         bool
	HonorSizeHints bool
	ClickToFocus   bool
	SkipWarp       bool
	SkipUrgentWarp bool
	UrgentDialogs  bool

	// Step and Snap are the drag controller's directional-step distance
	// and edge-snap threshold in pixels.
	Step int
	Snap int

	// BorderActivePixel and BorderInactivePixel are the resolved border
	// colors for the focused and unfocused clients, from the style table.
	BorderActivePixel   uint32
	BorderInactivePixel uint32
}

// Clients returns every live client in registry order (bottom-first
// stacking order, invariant 3).
func (e *Engine) Clients() []*client.Client {
	all := e.Registry.All(wmcore.KindClient)
	out := make([]*client.Client, 0, len(all))
	for _, ent := range all {
		out = append(out, ent.(*client.Client))
	}
	return out
}

func (e *Engine) screenClients() []screen.Client {
	all := e.Clients()
	out := make([]screen.Client, len(all))
	for i, c := range all {
		out[i] = c
	}
	return out
}

func (e *Engine) layerClients() []layer.Client {
	all := e.Clients()
	out := make([]layer.Client, len(all))
	for i, c := range all {
		out[i] = c
	}
	return out
}

func (e *Engine) screenByID(id wmcore.ID) *screen.Screen {
	for _, s := range e.Screens {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (e *Engine) gravityByID(id wmcore.ID) *gravity.Gravity {
	for _, g := range e.Gravities {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Handlers builds the event.Handlers bundle wired to this Engine's state,
// for xconn.NewPump to drive from decoded X events.
func (e *Engine) Handlers(ctx *xconn.EventContext) event.Handlers {
	return event.Handlers{
		RootConfigureNotify: func() { e.onRootConfigureNotify() },
		ConfigureRequest:    func() { e.onConfigureRequest(ctx) },
		EnterNotify:         func() { e.onEnterNotify(ctx) },
		MapRequest:          func() { e.onMapRequest(ctx) },
		DestroyNotify:       func() { e.onWindowGone(ctx) },
		UnmapNotify:         func() { e.onUnmapNotify(ctx) },
		ClientMessage:       func() { e.onClientMessage(ctx) },
		PropertyNotify:      func() { e.onPropertyNotify(ctx) },
		SelectionClear:      func() { e.onSelectionClear(ctx) },
		KeyPress:            func() { e.onKeyPress(ctx) },
		ButtonPress:         func() { e.onButtonPress(ctx) },
		ButtonRelease:       func() { e.onButtonRelease(ctx) },
		MotionNotify:        func() { e.onMotionNotify(ctx) },
	}
}

func (e *Engine) onRootConfigureNotify() {
	e.Registry.Flags |= wmcore.FlagReload
}

func (e *Engine) onConfigureRequest(ctx *xconn.EventContext) {
	ent, known := e.Registry.Find(ctx.Window)
	win := xproto.Window(ctx.Window)
	if !known {
		// Unmanaged window: honor verbatim.
		xproto.ConfigureWindow(e.Conn.X.Conn(), win,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(ctx.Value.X), uint32(ctx.Value.Y), uint32(ctx.Value.W), uint32(ctx.Value.H)})
		return
	}
	c, ok := ent.(*client.Client)
	if !ok {
		return
	}
	if c.IsFull() || !ctx.WantsResize {
		xproto.ConfigureWindow(e.Conn.X.Conn(), win,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(ctx.Value.X), uint32(ctx.Value.Y), uint32(ctx.Value.W), uint32(ctx.Value.H)})
		return
	}
	c.SetGeometry(ctx.Value)
	e.Mapper().Arrange(c, c.ScreenIDOf())
}

func (e *Engine) onEnterNotify(ctx *xconn.EventContext) {
	if e.Options.ClickToFocus {
		return
	}
	ent, ok := e.Registry.Find(ctx.Window)
	if !ok {
		return
	}
	if c, ok := ent.(*client.Client); ok {
		e.Focus.Focus(c, c, e.Registry.VisibleTags, false)
	}
}

func (e *Engine) onMapRequest(ctx *xconn.EventContext) {
	if ent, known := e.Registry.Find(ctx.Window); known {
		if c, ok := ent.(*client.Client); ok && c.Dead() {
			c.Flags &^= wmcore.FlagDead
			e.Mapper().Arrange(c, c.ScreenIDOf())
		}
		return
	}

	id := wmcore.ID(e.Registry.Len(wmcore.KindClient))
	deps := e.adoptDeps()
	c, ok := client.Adopt(id, ctx.Window, deps)
	if !ok {
		return // override-redirect
	}
	e.Registry.Add(wmcore.KindClient, c)
	if e.Grabs != nil {
		_ = e.Conn.GrabWindow(xproto.Window(c.Window), e.Grabs)
	}
	e.reconfigure()
	e.Focus.Focus(c, c, e.Registry.VisibleTags, !e.Options.SkipWarp)
}

// ScanExisting adopts every window already mapped before this process
// claimed the WM selection: the initial-scan half of the adoption path.
func (e *Engine) ScanExisting() {
	tree, err := xproto.QueryTree(e.Conn.X.Conn(), e.Conn.RootWindow()).Reply()
	if err != nil {
		return
	}
	for _, w := range tree.Children {
		attr, err := xproto.GetWindowAttributes(e.Conn.X.Conn(), w).Reply()
		if err != nil || attr.OverrideRedirect || attr.MapState != xproto.MapStateViewable {
			continue
		}
		ctx := xconn.EventContext{Window: wmcore.Window(w)}
		e.onMapRequest(&ctx)
	}
}

// onUnmapNotify handles an UnmapNotify, which may be a client's own
// withdrawal or the echo of a SetUnmapIgnore-guarded unmap this Engine
// issued itself (a visibility-driven hide); the latter must not be
// mistaken for the client going away.
func (e *Engine) onUnmapNotify(ctx *xconn.EventContext) {
	if e.unmapIgnore[ctx.Window] {
		delete(e.unmapIgnore, ctx.Window)
		return
	}
	e.onWindowGone(ctx)
}

func (e *Engine) onWindowGone(ctx *xconn.EventContext) {
	ent, ok := e.Registry.Find(ctx.Window)
	if !ok {
		return
	}
	c, ok := ent.(*client.Client)
	if !ok {
		return
	}
	c.Flags |= wmcore.FlagDead
	for i := 0; i < e.Registry.Len(wmcore.KindClient); i++ {
		if other, _ := e.Registry.ByIndex(wmcore.KindClient, i); other == ent {
			e.Registry.Remove(wmcore.KindClient, i)
			break
		}
	}
	client.Removed(c, e.retiler(), e.refocuser())
	e.reconfigure()
}

// onPropertyNotify re-reads the specific hint that changed.
func (e *Engine) onPropertyNotify(ctx *xconn.EventContext) {
	ent, ok := e.Registry.Find(ctx.Window)
	if !ok {
		return
	}
	c, ok := ent.(*client.Client)
	if !ok {
		return
	}
	reader := xconn.HintReader{X: e.Conn.X}
	switch ctx.PropertyAtom {
	case xproto.AtomWmName, e.Surface.Atom("_NET_WM_NAME"):
		c.SetIdentity(reader.Name(ctx.Window), c.Instance(), c.Class(), c.Role())
	case xproto.AtomWmNormalHints:
		if hints, ok := reader.SizeHints(ctx.Window); ok {
			c.Hints = hints
		}
	case xproto.AtomWmHints:
		if reader.Urgent(ctx.Window) {
			c.Flags |= wmcore.FlagUrgent
		} else {
			c.Flags = c.Flags.Clear(wmcore.FlagUrgent)
		}
		e.updateUrgentTags()
	case e.Surface.Atom("_NET_WM_STRUT"):
		if left, right, top, bottom, ok := reader.Strut(ctx.Window); ok {
			if s := e.screenByID(c.ScreenID); s != nil {
				s.ApplyStrut(left, right, top, bottom)
			}
		}
	case e.Surface.Atom("_MOTIF_WM_HINTS"):
		if hasBorder, ok := reader.MotifBorder(ctx.Window); ok && !hasBorder && !c.Flags.Has(wmcore.FlagBorderless) {
			client.ToggleModes(c, wmcore.FlagBorderless, true, e.screenSizeOf(c), stateAdapter{e}, stateAdapter{e}, stateAdapter{e})
		}
	}
}

// updateUrgentTags recomputes the registry's urgent_tags bitmask from the
// alive clients still carrying the urgent bit.
func (e *Engine) updateUrgentTags() {
	var tags uint32
	for _, c := range e.Clients() {
		if !c.Dead() && c.IsUrgent() {
			tags |= c.TagBits()
		}
	}
	e.Registry.SetUrgentTags(tags)
}

func (e *Engine) screenSizeOf(c *client.Client) wmcore.Rect {
	if s := e.screenByID(c.ScreenIDOf()); s != nil {
		return s.WorkGeom
	}
	return wmcore.Rect{}
}

func (e *Engine) onClientMessage(ctx *xconn.EventContext) {
	switch ctx.MessageType {
	case e.Surface.Atom("SUBTLE_RELOAD"):
		e.Registry.Flags |= wmcore.FlagReload
	case e.Surface.Atom("SUBTLE_RESTART"):
		e.Registry.Flags |= wmcore.FlagRestart
	case e.Surface.Atom("SUBTLE_QUIT"):
		e.Registry.Flags &^= wmcore.FlagRun
	case e.Surface.Atom("_NET_CLOSE_WINDOW"):
		e.closeWindow(ctx.Window)
	case e.Surface.Atom("_NET_CURRENT_DESKTOP"):
		if len(e.Screens) > 0 {
			e.viewFocus(wmcore.ID(ctx.MessageData[0]), e.Screens[0].ID, false)
		}
	case e.Surface.Atom("_NET_ACTIVE_WINDOW"):
		if c, ok := e.clientFor(ctx.Window); ok {
			e.Focus.Focus(c, c, e.Registry.VisibleTags, !e.Options.SkipWarp)
		} else {
			e.deferOrIgnore(ctx)
		}
	case e.Surface.Atom("_NET_WM_STATE"):
		e.applyWMStateMessage(ctx)
	case e.Surface.Atom("_NET_MOVERESIZE_WINDOW"):
		e.applyMoveResizeMessage(ctx)
	case e.Surface.Atom(ewmh.AtomWindowTags):
		if c, ok := e.clientFor(ctx.Window); ok {
			c.Tags = ctx.MessageData[1]
			e.reconfigure()
		} else {
			e.deferOrIgnore(ctx)
		}
	case e.Surface.Atom(ewmh.AtomWindowGravity):
		if c, ok := e.clientFor(ctx.Window); ok {
			if g := e.gravityByID(wmcore.ID(ctx.MessageData[1])); g != nil {
				c.GravityID = g.ID
				e.Mapper().Arrange(c, c.ScreenIDOf())
			}
		} else {
			e.deferOrIgnore(ctx)
		}
	default:
		e.deferOrIgnore(ctx)
	}
}

func (e *Engine) clientFor(w wmcore.Window) (*client.Client, bool) {
	ent, ok := e.Registry.Find(w)
	if !ok {
		return nil, false
	}
	c, ok := ent.(*client.Client)
	return c, ok
}

// _NET_WM_STATE ClientMessage action codes, per EWMH.
const (
	netWMStateRemove = 0
	netWMStateAdd    = 1
	netWMStateToggle = 2
)

func (e *Engine) wmStateBit(a xproto.Atom) (wmcore.ClientFlag, bool) {
	switch a {
	case e.Surface.Atom("_NET_WM_STATE_FULLSCREEN"):
		return ewmh.TranslateWMState(ewmh.StateFullscreen)
	case e.Surface.Atom("_NET_WM_STATE_ABOVE"):
		return ewmh.TranslateWMState(ewmh.StateAbove)
	case e.Surface.Atom("_NET_WM_STATE_STICKY"):
		return ewmh.TranslateWMState(ewmh.StateSticky)
	case e.Surface.Atom("_NET_WM_STATE_DEMANDS_ATTENTION"):
		return ewmh.TranslateWMState(ewmh.StateDemandsAttention)
	}
	return 0, false
}

// applyWMStateMessage folds a _NET_WM_STATE ClientMessage's add/remove/
// toggle actions into one ToggleModes XOR mask: an add of a bit already
// set, or a remove of a bit already clear, contributes nothing.
func (e *Engine) applyWMStateMessage(ctx *xconn.EventContext) {
	c, ok := e.clientFor(ctx.Window)
	if !ok {
		e.deferOrIgnore(ctx)
		return
	}
	action := ctx.MessageData[0]
	var mask wmcore.ClientFlag
	for _, raw := range ctx.MessageData[1:3] {
		bit, ok := e.wmStateBit(xproto.Atom(raw))
		if !ok {
			continue
		}
		switch action {
		case netWMStateAdd:
			if !c.Flags.Has(bit) {
				mask |= bit
			}
		case netWMStateRemove:
			if c.Flags.Has(bit) {
				mask |= bit
			}
		case netWMStateToggle:
			mask |= bit
		}
	}
	if mask == 0 {
		return
	}
	client.ToggleModes(c, mask, true, e.screenSizeOf(c), stateAdapter{e}, stateAdapter{e}, stateAdapter{e})
	e.Mapper().Arrange(c, c.ScreenIDOf())
	e.reconfigure()
}

func (e *Engine) applyMoveResizeMessage(ctx *xconn.EventContext) {
	c, ok := e.clientFor(ctx.Window)
	if !ok {
		return
	}
	c.SetGeometry(wmcore.Rect{
		X: int(int32(ctx.MessageData[1])), Y: int(int32(ctx.MessageData[2])),
		W: int(ctx.MessageData[3]), H: int(ctx.MessageData[4]),
	})
	e.Mapper().Arrange(c, c.ScreenIDOf())
}

func (e *Engine) closeWindow(w wmcore.Window) {
	ent, ok := e.Registry.Find(w)
	if !ok {
		return
	}
	c, ok := ent.(*client.Client)
	if !ok {
		return
	}
	client.Close(c, e.closer(), func(cc *client.Client) {
		cc.Flags |= wmcore.FlagDead
	})
}

// deferOrIgnore pushes a ClientMessage referencing a not-yet-adopted
// window onto the deferred queue, keyed by a best-effort
// type tag: a window-targeted message defers under TypeTagClient so it
// replays once that window is adopted.
func (e *Engine) deferOrIgnore(ctx *xconn.EventContext) {
	if _, known := e.Registry.Find(ctx.Window); known {
		return
	}
	e.Queue.Push(event.Message{
		Tag:    event.TypeTagClient,
		Format: ctx.MessageFmt,
		Atom:   uint32(ctx.MessageType),
		Data:   ctx.MessageData,
	})
}

// DrainFor implements client.QueueDrainer for a window whose client has
// just been adopted: it pops the deferred client messages Queue.Pop
// returns for w and runs one reconfigure() pass per popped message. The
// messages' atom and data are not applied; they are dropped.
func (e *Engine) DrainFor(w wmcore.Window) {
	for range e.Queue.Pop(event.TypeTagClient, uint32(w)) {
		e.reconfigure()
	}
}

func (e *Engine) onSelectionClear(ctx *xconn.EventContext) {
	e.Registry.Flags &^= wmcore.FlagRun
}

// reconfigure re-runs screen.Configure, the single place visible_tags,
// visible_views and client_tags are recomputed from scratch.
func (e *Engine) reconfigure() {
	visibleTags, visibleViews, clientTags := screen.Configure(
		e.Screens, e.Views, e.screenClients(), e.Mapper(), e.Options.SkipUrgentWarp)
	e.Registry.VisibleTags = visibleTags
	e.Registry.VisibleViews = visibleViews
	e.Registry.ClientTags = clientTags
	e.restack(-1, layer.DirNone)
	e.publishClientList()
}

// restack sorts the client collection with the layering comparator,
// writes the new bottom-first order back to the registry (the client
// array's order is the stacking order), and re-applies it to the server.
func (e *Engine) restack(triggerIndex int, dir layer.Direction) {
	members := e.layerClients()
	layer.Restack(members, triggerIndex, dir)
	order := make([]wmcore.Entity, len(members))
	for i, m := range members {
		order[i] = m.(*client.Client)
	}
	e.Registry.Reorder(wmcore.KindClient, order)
	e.applyStacking()
}

func (e *Engine) applyStacking() {
	clients := e.Clients()
	for i := 1; i < len(clients); i++ {
		xproto.ConfigureWindow(e.Conn.X.Conn(), xproto.Window(clients[i].Window),
			xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
			[]uint32{uint32(clients[i-1].Window), xproto.StackModeAbove})
	}
}

func (e *Engine) publishClientList() {
	clients := e.Clients()
	wins := make([]xproto.Window, len(clients))
	for i, c := range clients {
		wins[i] = xproto.Window(c.Window)
	}
	_ = e.Surface.PublishRootState(ewmh.RootState{
		ClientList:         wins,
		ClientListStacking: wins,
		DesktopCount:       len(e.Views),
		VisibleTags:        e.Registry.VisibleTags,
		VisibleViews:       e.Registry.VisibleViews,
	})
}

// ReloadSteps builds the event.ReloadSteps bundle main.go hands to the
// dispatcher, each step bound to this Engine's own state.
// evaluateConfig is supplied by the caller since only main.go knows the
// config file path and how to re-run BuildGravities/BuildTags/BuildViews/
// BuildGrabs against it.
func (e *Engine) ReloadSteps(evaluateConfig func() error) event.ReloadSteps {
	return event.ReloadSteps{
		EvaluateConfig: evaluateConfig,
		SortGrabs: func() {
			if e.Grabs != nil {
				e.Grabs.Sort()
			}
		},
		RetagClients: func() {
			for _, c := range e.Clients() {
				client.Retag(c, e.Tags)
			}
		},
		ConfigureScreens: func() { e.reconfigure() },
		RefocusUnderPointer: func() {
			for _, s := range e.Screens {
				e.refocuser().FocusNext(s.ID)
			}
		},
	}
}

// adoptDeps assembles client.Deps for client.Adopt, wiring every
// collaborator interface to this Engine.
func (e *Engine) adoptDeps() client.Deps {
	var gravityID wmcore.ID
	if len(e.Gravities) > 0 {
		gravityID = e.Gravities[0].ID
	}
	focused, hasFocused := e.focusedClient()
	var screenID wmcore.ID
	var screenSize wmcore.Rect
	if len(e.Screens) > 0 {
		screenID = e.Screens[0].ID
		screenSize = e.Screens[0].WorkGeom
	}

	deps := client.Deps{
		Reader:         xconn.HintReader{X: e.Conn.X},
		Struts:         stateAdapter{e},
		Hooks:          stateAdapter{e},
		Queue:          e,
		Lookup:         stateAdapter{e},
		Tags:           e.Tags,
		DefaultGravity: gravityID,
		ViewCount:      len(e.Views),
		UrgentDialogs:  e.Options.UrgentDialogs,
		ScreenSize:     screenSize,
		ScreenID:       screenID,
		Focus:          stateAdapter{e},
		StatePublisher: stateAdapter{e},
		ModeHooks:      stateAdapter{e},
	}
	if hasFocused {
		deps.HasFocused = true
		deps.FocusedGravity = focused.GravityID
	}
	return deps
}

func (e *Engine) focusedClient() (*client.Client, bool) {
	ent, ok := e.Registry.Find(e.Focus.Current())
	if !ok {
		return nil, false
	}
	c, ok := ent.(*client.Client)
	return c, ok
}

// Mapper implements screen.Mapper directly on Engine, driving the real X
// connection.
func (e *Engine) Mapper() screen.Mapper { return engineMapper{e} }

type engineMapper struct{ e *Engine }

func (m engineMapper) client(c screen.Client) (*client.Client, bool) {
	cc, ok := c.(*client.Client)
	return cc, ok
}

func (m engineMapper) Map(c screen.Client) {
	cc, ok := m.client(c)
	if !ok {
		return
	}
	xproto.MapWindow(m.e.Conn.X.Conn(), xproto.Window(cc.Window))
}

func (m engineMapper) Unmap(c screen.Client) {
	cc, ok := m.client(c)
	if !ok {
		return
	}
	xproto.UnmapWindow(m.e.Conn.X.Conn(), xproto.Window(cc.Window))
}

func (m engineMapper) SetUnmapIgnore(c screen.Client, ignore bool) {
	cc, ok := m.client(c)
	if !ok {
		return
	}
	if m.e.unmapIgnore == nil {
		m.e.unmapIgnore = make(map[wmcore.Window]bool)
	}
	if ignore {
		m.e.unmapIgnore[cc.Window] = true
	} else {
		delete(m.e.unmapIgnore, cc.Window)
	}
}

func (m engineMapper) SetWithdrawn(c screen.Client) {
	cc, ok := m.client(c)
	if !ok {
		return
	}
	xconn.HintReader{X: m.e.Conn.X}.SetWithdrawn(cc.Window)
}

func (m engineMapper) SetNormalState(c screen.Client) {
	cc, ok := m.client(c)
	if !ok {
		return
	}
	icccm.WmStateSet(m.e.Conn.X, xproto.Window(cc.Window), &icccm.WmState{State: icccm.StateNormal})
}

func (m engineMapper) Arrange(c screen.Client, screenID wmcore.ID) {
	cc, ok := m.client(c)
	if !ok {
		return
	}
	s := m.e.screenByID(screenID)
	if s == nil {
		return
	}
	// The gravity in effect is the one recorded for the screen's current
	// view, written back through the per-view vector.
	viewIdx := int(s.ViewID)
	gid := cc.GravityFor(viewIdx)
	cc.GravityID = gid
	cc.SetGravityFor(viewIdx, gid)
	g := m.e.gravityByID(gid)
	if g == nil {
		return
	}
	geom, mode := gravity.Arrange(cc, g, s.WorkGeom, m.e.DisplayBounds, false, 0, 0,
		false, m.e.Options.Tiling, m.e.Options.HonorSizeHints)
	if mode == gravity.ModeTile {
		members := m.e.tileMembers(g.ID, screenID)
		gravity.Tile(g, s.WorkGeom, members, m.e.Options.HonorSizeHints)
		for _, member := range members {
			if mc, ok := member.(*client.Client); ok {
				m.applyGeometry(mc)
			}
		}
		return
	}
	cc.SetGeometry(geom)
	m.applyGeometry(cc)
}

func (m engineMapper) applyGeometry(cc *client.Client) {
	geom := cc.Geometry()
	xproto.ConfigureWindow(m.e.Conn.X.Conn(), xproto.Window(cc.Window),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(geom.X), uint32(geom.Y), uint32(geom.W), uint32(geom.H)})
}

func (m engineMapper) WarpTo(c screen.Client) {
	cc, ok := m.client(c)
	if !ok {
		return
	}
	x, y := cc.CenterPoint()
	root := m.e.Conn.RootWindow()
	xproto.WarpPointer(m.e.Conn.X.Conn(), 0, root, 0, 0, 0, 0, int16(x), int16(y))
}

// tileMembers gathers the live, visible, non-float, non-full clients
// sharing gravityID on screenID, in registry (bottom-first) order: the
// input tile() arranges.
func (e *Engine) tileMembers(gravityID, screenID wmcore.ID) []gravity.Tileable {
	var out []gravity.Tileable
	for _, c := range e.Clients() {
		if c.Dead() || c.GravityID != gravityID || c.ScreenIDOf() != screenID {
			continue
		}
		if c.IsFloating() || c.IsFull() || c.IsDock() {
			continue
		}
		if !c.Visible(e.Registry.VisibleTags) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// closer implements client.Closer over the live connection.
func (e *Engine) closer() client.Closer { return engineCloser{e} }

type engineCloser struct{ e *Engine }

func (c engineCloser) SendDeleteWindow(w wmcore.Window) {
	win := xproto.Window(w)
	protocols := c.e.Surface.Atom("WM_PROTOCOLS")
	deleteAtom := c.e.Surface.Atom("WM_DELETE_WINDOW")
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   protocols,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(deleteAtom), uint32(xproto.TimeCurrentTime), 0, 0, 0}),
	}
	xproto.SendEvent(c.e.Conn.X.Conn(), false, win, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (c engineCloser) KillClient(w wmcore.Window) {
	xproto.KillClient(c.e.Conn.X.Conn(), uint32(w))
}

// retiler implements client.Retiler by re-running the full configure pass,
// which re-tiles every gravity/screen slot from scratch.
func (e *Engine) retiler() client.Retiler { return engineRetiler{e} }

type engineRetiler struct{ e *Engine }

func (r engineRetiler) Retile(gravityID, screenID wmcore.ID) {
	r.e.reconfigure()
}

// refocuser implements client.Refocuser by running focus.Engine.Next over
// the current stacking order.
func (e *Engine) refocuser() client.Refocuser { return engineRefocuser{e} }

type engineRefocuser struct{ e *Engine }

type engineResolver struct{ e *Engine }

func (r engineResolver) Resolve(w wmcore.Window) (focus.Client, bool) {
	ent, ok := r.e.Registry.Find(w)
	if !ok {
		return nil, false
	}
	c, ok := ent.(*client.Client)
	return c, ok
}

func (r engineRefocuser) FocusNext(screenID wmcore.ID) {
	clients := r.e.Clients()
	cands := make([]focus.Candidate, len(clients))
	for i, c := range clients {
		cands[i] = c
	}
	next, ok := r.e.Focus.Next(screenID, true, engineResolver{r.e}, r.e.Registry.VisibleTags, cands, len(r.e.Screens))
	if !ok {
		return
	}
	cc, ok := next.(*client.Client)
	if !ok {
		return
	}
	r.e.Focus.Focus(cc, cc, r.e.Registry.VisibleTags, !r.e.Options.SkipWarp)
}

// stateAdapter wires the small collaborator interfaces client.Deps and
// client.ToggleModes need to this Engine's Registry/Hooks/Surface, kept as
// one adapter type since every method is a thin one-line forward.
type stateAdapter struct{ e *Engine }

func (a stateAdapter) ApplyStrut(screenID wmcore.ID, left, right, top, bottom int) {
	if s := a.e.screenByID(screenID); s != nil {
		s.ApplyStrut(left, right, top, bottom)
	}
}

func (a stateAdapter) FireClientCreate(c *client.Client) {
	a.e.Hooks.Call(hook.KindClient, hook.ActionCreate, c)
}

func (a stateAdapter) ClientByWindow(w wmcore.Window) (*client.Client, bool) {
	ent, ok := a.e.Registry.Find(w)
	if !ok {
		return nil, false
	}
	c, ok := ent.(*client.Client)
	return c, ok
}

func (a stateAdapter) FocusedScreen() (wmcore.ID, bool) {
	c, ok := a.e.focusedClient()
	if !ok {
		return 0, false
	}
	return c.ScreenIDOf(), true
}

func (a stateAdapter) PublishClientState(c *client.Client) {
	flags := ewmh.TranslateClientMode(c.Flags)
	a.e.Surface.PublishClientState(xproto.Window(c.Window), flags, int(c.ScreenIDOf()),
		c.BorderWidthPx(), c.TagBits(), int(c.GravityID), int(c.ScreenIDOf()))
}

func (a stateAdapter) FireClientMode(c *client.Client) {
	a.e.Hooks.Call(hook.KindClient, hook.ActionMode, c)
}
