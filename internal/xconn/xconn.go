// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package xconn wires the pure-logic engine packages to a live X11
// server: connection setup, WM selection claim, and screen enumeration.
package xconn

import (
	"fmt"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// SelectionWaitSeconds is how long ClaimSelection waits for a previous
// window manager to relinquish WM_S<screen-number> before giving up.
const SelectionWaitSeconds = 10

// Conn owns the single X display connection. It is exclusively owned by
// the event loop's goroutine; no handler may hand it off.
type Conn struct {
	X          *xgbutil.XUtil
	selAtom    xproto.Atom
	selOwner   xproto.Window
	checkWin   xproto.Window
}

// Connect opens the X11 connection. displayName follows Xlib's DISPLAY
// convention ("" means $DISPLAY).
func Connect(displayName string) (*Conn, error) {
	var X *xgbutil.XUtil
	var err error
	if displayName == "" {
		X, err = xgbutil.NewConn()
	} else {
		X, err = xgbutil.NewConnDisplay(displayName)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open X display: %w", err)
	}
	return &Conn{X: X}, nil
}

// Close releases the X11 connection.
func (c *Conn) Close() {
	if c.X != nil {
		c.X.Conn().Close()
	}
}

// ClaimSelection claims WM_S<screen-number>. If a previous
// owner exists and replace is requested, it waits up to
// SelectionWaitSeconds for the previous owner to relinquish the
// selection before giving up.
func (c *Conn) ClaimSelection(screenNum int, replace bool) error {
	name := fmt.Sprintf("WM_S%d", screenNum)
	atom, err := xproto.InternAtom(c.X.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return fmt.Errorf("could not intern %s: %w", name, err)
	}
	c.selAtom = atom.Atom

	reply, err := xproto.GetSelectionOwner(c.X.Conn(), c.selAtom).Reply()
	if err != nil {
		return fmt.Errorf("could not query %s owner: %w", name, err)
	}
	previousOwner := reply.Owner

	win, err := c.newSelectionWindow()
	if err != nil {
		return err
	}
	c.checkWin = win

	if err := xproto.SetSelectionOwnerChecked(c.X.Conn(), win, c.selAtom, xproto.TimeCurrentTime).Check(); err != nil {
		return fmt.Errorf("could not claim %s: %w", name, err)
	}

	if previousOwner != 0 && previousOwner != win {
		if !replace {
			return fmt.Errorf("%s is already owned by window %d; pass -r to replace", name, previousOwner)
		}
		if err := c.waitForOwnerExit(previousOwner); err != nil {
			return err
		}
	}
	return nil
}

func (c *Conn) waitForOwnerExit(owner xproto.Window) error {
	deadline := time.Now().Add(SelectionWaitSeconds * time.Second)
	for time.Now().Before(deadline) {
		_, err := xproto.GetWindowAttributes(c.X.Conn(), owner).Reply()
		if err != nil {
			return nil // previous owner's window is gone
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("previous window manager did not exit within %ds", SelectionWaitSeconds)
}

func (c *Conn) newSelectionWindow() (xproto.Window, error) {
	win, err := xproto.NewWindowId(c.X.Conn())
	if err != nil {
		return 0, err
	}
	screen := c.X.Screen()
	err = xproto.CreateWindowChecked(
		c.X.Conn(), screen.RootDepth, win, screen.Root,
		-1, -1, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		0, nil,
	).Check()
	if err != nil {
		return 0, err
	}
	return win, nil
}

// RootWindow returns the root window of the connected display.
func (c *Conn) RootWindow() xproto.Window { return c.X.RootWin() }

// SelectWMInputs registers for the root-window event mask a window
// manager needs: substructure redirect (MapRequest/ConfigureRequest
// delivery), substructure and structure notify, property changes and
// enter events. Only one client may hold substructure redirect on the
// root, so an error here means another window manager is still running.
func (c *Conn) SelectWMInputs() error {
	return xproto.ChangeWindowAttributesChecked(c.X.Conn(), c.X.RootWin(), xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskSubstructureRedirect |
			xproto.EventMaskSubstructureNotify |
			xproto.EventMaskStructureNotify |
			xproto.EventMaskPropertyChange |
			xproto.EventMaskEnterWindow)}).Check()
}
