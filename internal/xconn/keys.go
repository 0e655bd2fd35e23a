// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package xconn

import (
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"tilewm/internal/grab"
)

// KeyResolver implements grab.KeycodeResolver over a live xgbutil
// connection, resolving key names (e.g. "F1", "Return") to their numeric
// keycode via keybind's keysym table. Button tokens never reach this
// type: grab.Token.Resolve only calls it for keyboard tokens.
type KeyResolver struct {
	X *xgbutil.XUtil
}

// NewKeyResolver initializes xgbutil's keybind package (it caches the
// keyboard mapping on first use) and returns a resolver bound to X.
func NewKeyResolver(X *xgbutil.XUtil) *KeyResolver {
	keybind.Initialize(X)
	return &KeyResolver{X: X}
}

func (r *KeyResolver) Keycode(name string) (uint8, bool) {
	// keybind.ParseString expects a full "Mod-Key" spec; passing the key
	// name alone with no modifier prefix resolves just its keycodes, which
	// is all grab.Token.Resolve needs (it folds modifiers separately). A
	// keysym can map to several keycodes; the grab table keys on one, so
	// the first is taken.
	_, keycodes, err := keybind.ParseString(r.X, name)
	if err != nil || len(keycodes) == 0 || keycodes[0] == 0 {
		return 0, false
	}
	return uint8(keycodes[0]), true
}

var _ grab.KeycodeResolver = (*KeyResolver)(nil)
