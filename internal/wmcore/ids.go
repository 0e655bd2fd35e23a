// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package wmcore owns the process-wide registry: every client, tag, view,
// gravity, screen, grab, hook, tray and sublet the window manager knows
// about, keyed by stable integer ids, plus the window->object lookup.
package wmcore

// ID is a stable integer identifier for a registry entity. IDs are assigned
// densely (0..N-1) per kind and shift down when a lower entry is removed, as
// described by the data model's tag-removal and view-removal invariants.
type ID int

// Window is an opaque X11 window id. The core never interprets it beyond
// use as a map key and an argument to the X protocol bindings in xconn.
type Window uint32

const (
	// NoWindow is the zero value meaning "no associated X window".
	NoWindow Window = 0
)
