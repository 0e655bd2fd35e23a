// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package xconn

import (
	"github.com/BurntSushi/xgb/xproto"

	"tilewm/internal/grab"
)

// NumLockMask and CapsLockMask are the conventional X11 modifier bit
// positions for NumLock and CapsLock. NumLock is not fixed by
// the protocol (it rides whichever Mod bit the running keyboard mapping
// assigns it) but Mod2 is the overwhelming convention, and these masks are
// fixed constants.
const (
	CapsLockMask uint16 = uint16(xproto.ModMaskLock)
	NumLockMask  uint16 = uint16(xproto.ModMask2)
)

// GrabWindow installs every grab in table on window, replicated over the
// NumLock/CapsLock modifier power set so state variants all trigger. Key
// grabs are installed via GrabKey, button grabs (Grab.IsButton) via
// GrabButton.
func (c *Conn) GrabWindow(window xproto.Window, table *grab.Table) error {
	for _, g := range table.All() {
		for _, state := range grab.ModMaskVariants(g.State, NumLockMask, CapsLockMask) {
			if g.IsButton {
				if err := xproto.GrabButtonChecked(c.X.Conn(), false, window,
					clickToFocusMask(), xproto.GrabModeAsync, xproto.GrabModeAsync,
					0, 0, byte(g.Code), state).Check(); err != nil {
					return err
				}
				continue
			}
			if err := xproto.GrabKeyChecked(c.X.Conn(), false, window,
				state, xproto.Keycode(g.Code), xproto.GrabModeAsync, xproto.GrabModeAsync).Check(); err != nil {
				return err
			}
		}
	}
	return nil
}

// anyKey and anyButton are the X11 protocol's "any" wildcards (0), used
// for ungrabbing everything a window owns and for the chain-armed grab.
const (
	anyKey    = xproto.Keycode(0)
	anyButton = xproto.Button(0)
)

// UngrabWindow removes every keyboard and pointer grab window owns,
// matching the keychain's "armed" ungrab-then-regrab step.
func (c *Conn) UngrabWindow(window xproto.Window) {
	xproto.UngrabKey(c.X.Conn(), anyKey, window, uint16(xproto.ModMaskAny))
	xproto.UngrabButton(c.X.Conn(), byte(anyButton), window, uint16(xproto.ModMaskAny))
}

// GrabAnyKey arms the transient "chain armed" state by installing an
// AnyKey/AnyModifier grab on window.
func (c *Conn) GrabAnyKey(window xproto.Window) error {
	return xproto.GrabKeyChecked(c.X.Conn(), false, window,
		uint16(xproto.ModMaskAny), anyKey, xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
}

// clickToFocusMask is the button event mask "Open question"
// flags as a bug in the source: ButtonPressMask and ButtonReleaseMask
// combined with bitwise-OR, never with `>` (which the source's typo
// evaluates to 0, a no-op grab). Both masks are always requested together
// so a button release reaches the drag controller regardless of whether
// click-to-focus is active.
func clickToFocusMask() uint16 {
	return uint16(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease)
}
