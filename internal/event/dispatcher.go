// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package event

import (
	"time"

	"golang.org/x/sys/unix"
)

// MaxTimeout caps the poll timeout: the next sublet-interval deadline
// capped at 60 seconds.
const MaxTimeout = 60 * time.Second

// Watch is one extra fd the loop multiplexes alongside the X connection,
// such as a config file watch or a sublet socket.
type Watch struct {
	FD     int
	OnData func()
}

// Handlers bundles the callbacks Dispatcher invokes for each X event kind
// it recognizes. Every field is optional; a nil handler means the event
// is ignored.
type Handlers struct {
	RootConfigureNotify func()
	ConfigureRequest    func()
	EnterNotify         func()
	MapRequest          func()
	DestroyNotify       func()
	UnmapNotify         func()
	ClientMessage       func()
	PropertyNotify      func()
	SelectionClear      func()
	KeyPress            func()
	ButtonPress         func()
	ButtonRelease       func()
	MotionNotify        func()
}

// Reloader performs the seven reload steps, invoked whenever the
// process-wide reload flag is observed set.
type Reloader interface {
	Reload()
}

// Dispatcher is the single owner of the main loop: poll(fds, timeout) is
// its sole suspension point.
type Dispatcher struct {
	xFD      int
	watches  []Watch
	handlers Handlers
	Queue    Queue
	Reload   Reloader

	// PollNext, when called, services at most one queued X event and
	// returns whether it serviced one; Run calls it repeatedly until it
	// returns false to drain the queue. Real wiring reads the next
	// event off the X connection and dispatches it through handlers;
	// tests substitute a fake.
	PollNext func() bool

	// ReloadRequested is polled once per loop iteration after PollNext.
	ReloadRequested func() bool
}

// NewDispatcher returns a Dispatcher polling xFD (the X connection's
// file descriptor) plus any extra watches.
func NewDispatcher(xFD int, watches []Watch, h Handlers) *Dispatcher {
	return &Dispatcher{xFD: xFD, watches: watches, handlers: h}
}

// Handlers exposes the configured callbacks so xconn wiring can drive
// them directly when it has already decoded an event's type.
func (d *Dispatcher) Handlers() Handlers { return d.handlers }

// Run blocks, servicing events until stop returns true. nextTimeout
// returns the next
// sublet-interval deadline; it is clamped to MaxTimeout.
func (d *Dispatcher) Run(stop func() bool, nextTimeout func() time.Duration) error {
	fds := make([]unix.PollFd, 0, 1+len(d.watches))
	fds = append(fds, unix.PollFd{Fd: int32(d.xFD), Events: unix.POLLIN})
	for _, w := range d.watches {
		fds = append(fds, unix.PollFd{Fd: int32(w.FD), Events: unix.POLLIN})
	}

	for !stop() {
		timeout := MaxTimeout
		if nextTimeout != nil {
			if t := nextTimeout(); t < timeout {
				timeout = t
			}
		}
		n, err := unix.Poll(fds, int(timeout.Milliseconds()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}

		if n > 0 {
			if fds[0].Revents&unix.POLLIN != 0 && d.PollNext != nil {
				for d.PollNext() {
				}
			}
			for i, w := range d.watches {
				if fds[i+1].Revents&unix.POLLIN != 0 && w.OnData != nil {
					w.OnData()
				}
			}
		}

		if d.ReloadRequested != nil && d.ReloadRequested() && d.Reload != nil {
			d.Reload.Reload()
		}
	}
	return nil
}
