// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package wmcore

// Tray is a minimal record for an XEMBED tray icon window. Rendering and
// the embed protocol itself live outside the core; the core only needs
// enough bookkeeping for the window to participate in layering and
// destruction cleanup.
type Tray struct {
	ID       ID
	Window   Window
	ScreenID ID
}

func (t *Tray) EntityID() ID         { return t.ID }
func (t *Tray) EntityWindow() Window { return t.Window }

// Sublet is a minimal record for a scripted interval extension. The
// scheduler and script invocation are out of scope; the core only needs
// the file descriptor so the event dispatcher can poll it.
type Sublet struct {
	ID       ID
	Name     string
	Interval int // milliseconds
	FD       int
}

func (s *Sublet) EntityID() ID         { return s.ID }
func (s *Sublet) EntityWindow() Window { return NoWindow }
