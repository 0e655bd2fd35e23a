// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package xconn

import (
	"log"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"tilewm/internal/event"
	"tilewm/internal/wmcore"
)

// EventContext carries the fields of whichever raw X event Pump most
// recently decoded. event.Handlers callbacks take no arguments; a handler
// reads the fields it needs off the Pump that invoked it, the same way a
// signal handler reads errno/siginfo rather than receiving it as a
// parameter.
type EventContext struct {
	Window       wmcore.Window
	RootChanged  bool
	WantsResize  bool
	Value        wmcore.Rect
	MessageType  xproto.Atom
	MessageData  [5]uint32
	MessageFmt   byte
	PropertyAtom xproto.Atom
	SelectionWin wmcore.Window

	// Code/State/RootX/RootY carry a decoded key or button event's detail
	// code, raw modifier state, and pointer root-relative position.
	Code  uint8
	State uint16
	RootX int
	RootY int
}

// Pump decodes one raw X11 event at a time off a live connection and
// dispatches it through event.Handlers. xgb owns the display socket and
// reads it from an internal goroutine, so the main loop cannot poll the
// socket directly; instead a reader goroutine forwards each event into a
// buffered queue and signals readiness through a self-pipe whose read end
// is what event.Dispatcher polls.
type Pump struct {
	Conn     *Conn
	Handlers event.Handlers
	Ctx      EventContext

	root    xproto.Window
	events  chan xgb.Event
	notifyR *os.File
	notifyW *os.File
	dead    bool
}

// NewPump returns a Pump reading off conn and dispatching through h.
func NewPump(conn *Conn, h event.Handlers) *Pump {
	return &Pump{Conn: conn, Handlers: h, root: conn.RootWindow()}
}

// Start spawns the reader goroutine and the self-pipe. The goroutine only
// moves events between xgb and the queue; every handler still runs on the
// dispatcher's goroutine, so the registry keeps its single-owner model.
func (p *Pump) Start() error {
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	p.notifyR, p.notifyW = r, w
	p.events = make(chan xgb.Event, 64)
	go p.readLoop()
	return nil
}

// NotifyFD is the poll()-able file descriptor that becomes readable
// whenever at least one X event is queued.
func (p *Pump) NotifyFD() int { return int(p.notifyR.Fd()) }

// Dead reports whether the X connection has closed.
func (p *Pump) Dead() bool { return p.dead }

func (p *Pump) readLoop() {
	one := []byte{0}
	for {
		ev, err := p.Conn.X.Conn().WaitForEvent()
		if ev == nil && err == nil {
			close(p.events)
			p.notifyW.Write(one) // wake the poll loop so it observes Dead
			return
		}
		if err != nil {
			logProtocolError(err)
			continue
		}
		p.notifyW.Write(one)
		p.events <- ev
	}
}

// PollNext dispatches exactly one queued event, returning false once the
// queue is drained (or the connection died). A protocol error for a
// request this process issued never reaches here; readLoop logs and
// drops it.
func (p *Pump) PollNext() bool {
	select {
	case ev, ok := <-p.events:
		if !ok {
			p.dead = true
			return false
		}
		var buf [1]byte
		p.notifyR.Read(buf[:])
		p.dispatch(ev)
		return true
	default:
		return false
	}
}

func (p *Pump) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if e.Window == p.root {
			p.Ctx = EventContext{RootChanged: true}
			call(p.Handlers.RootConfigureNotify)
		}
	case xproto.ConfigureRequestEvent:
		p.Ctx = EventContext{
			Window:      wmcore.Window(e.Window),
			WantsResize: e.ValueMask&(xproto.ConfigWindowWidth|xproto.ConfigWindowHeight) != 0,
			Value: wmcore.Rect{
				X: int(e.X), Y: int(e.Y),
				W: int(e.Width), H: int(e.Height),
			},
		}
		call(p.Handlers.ConfigureRequest)
	case xproto.EnterNotifyEvent:
		p.Ctx = EventContext{Window: wmcore.Window(e.Event)}
		call(p.Handlers.EnterNotify)
	case xproto.MapRequestEvent:
		p.Ctx = EventContext{Window: wmcore.Window(e.Window)}
		call(p.Handlers.MapRequest)
	case xproto.DestroyNotifyEvent:
		p.Ctx = EventContext{Window: wmcore.Window(e.Window)}
		call(p.Handlers.DestroyNotify)
	case xproto.UnmapNotifyEvent:
		p.Ctx = EventContext{Window: wmcore.Window(e.Window)}
		call(p.Handlers.UnmapNotify)
	case xproto.ClientMessageEvent:
		p.Ctx = EventContext{
			Window:      wmcore.Window(e.Window),
			MessageType: e.Type,
			MessageFmt:  e.Format,
			MessageData: decodeClientMessageData(e),
		}
		call(p.Handlers.ClientMessage)
	case xproto.PropertyNotifyEvent:
		p.Ctx = EventContext{Window: wmcore.Window(e.Window), PropertyAtom: e.Atom}
		call(p.Handlers.PropertyNotify)
	case xproto.SelectionClearEvent:
		p.Ctx = EventContext{SelectionWin: wmcore.Window(e.Owner)}
		call(p.Handlers.SelectionClear)
	case xproto.KeyPressEvent:
		p.Ctx = EventContext{
			Window: wmcore.Window(e.Event), Code: uint8(e.Detail), State: e.State,
			RootX: int(e.RootX), RootY: int(e.RootY),
		}
		call(p.Handlers.KeyPress)
	case xproto.ButtonPressEvent:
		p.Ctx = EventContext{
			Window: wmcore.Window(e.Event), Code: uint8(e.Detail), State: e.State,
			RootX: int(e.RootX), RootY: int(e.RootY),
		}
		call(p.Handlers.ButtonPress)
	case xproto.ButtonReleaseEvent:
		p.Ctx = EventContext{
			Window: wmcore.Window(e.Event), Code: uint8(e.Detail), State: e.State,
			RootX: int(e.RootX), RootY: int(e.RootY),
		}
		call(p.Handlers.ButtonRelease)
	case xproto.MotionNotifyEvent:
		p.Ctx = EventContext{
			Window: wmcore.Window(e.Event), RootX: int(e.RootX), RootY: int(e.RootY),
		}
		call(p.Handlers.MotionNotify)
	}
}

func call(h func()) {
	if h != nil {
		h()
	}
}

func decodeClientMessageData(e xproto.ClientMessageEvent) [5]uint32 {
	var out [5]uint32
	data := e.Data.Data32
	for i := 0; i < len(out) && i < len(data); i++ {
		out[i] = data[i]
	}
	return out
}

// logProtocolError is a seam so tests can observe what would otherwise
// go to the process-wide logger.
var logProtocolError = func(err error) {
	// Asynchronous protocol errors are often benign (e.g. a request
	// racing a window's destruction) and must never abort the loop.
	log.Printf("X protocol error: %v\n", err)
}
