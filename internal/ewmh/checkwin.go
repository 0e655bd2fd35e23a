// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// xwindowCreateCheckWindow creates the 1x1 override-redirect window EWMH's
// _NET_SUPPORTING_WM_CHECK convention requires: a window that both the
// root and itself name as the supporting check, proving a conforming
// window manager is alive.
func xwindowCreateCheckWindow(X *xgbutil.XUtil) (xproto.Window, error) {
	win, err := xwindow.Generate(X)
	if err != nil {
		return 0, err
	}
	win.Create(X.RootWin(), -1, -1, 1, 1, xproto.CwOverrideRedirect, 1)
	return win.Id, nil
}
