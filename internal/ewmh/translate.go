// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package ewmh implements the EWMH/ICCCM surface: atom interning, the
// get/set property helpers, the translate_wm_state/translate_client_mode
// mapping pair, and publication of root and client properties via
// xgbutil's ewmh and xprop helpers.
package ewmh

import "tilewm/internal/wmcore"

// StateAtom names one of the external _NET_WM_STATE atoms this window
// manager understands: fullscreen, above, sticky, demands-attention.
type StateAtom int

const (
	StateFullscreen StateAtom = iota
	StateAbove
	StateSticky
	StateDemandsAttention
)

// TranslateWMState converts one external _NET_WM_STATE atom into the
// internal mode bit it toggles. It is the sole authority on this mapping
// and is exhaustive over every atom this core recognizes; an atom outside
// StateFullscreen/StateAbove/StateSticky/StateDemandsAttention has no
// internal bit and ok is false.
//
// StateAbove maps to FlagFloat, not a raise-above-others bit: this core has
// no separate "above" layer, and an always-on-top client is, in practice,
// a floating one.
func TranslateWMState(atom StateAtom) (bit wmcore.ClientFlag, ok bool) {
	switch atom {
	case StateFullscreen:
		return wmcore.FlagFull, true
	case StateAbove:
		return wmcore.FlagFloat, true
	case StateSticky:
		return wmcore.FlagStick, true
	case StateDemandsAttention:
		return wmcore.FlagUrgent, true
	}
	return 0, false
}

// ClientMode names one of the internal mode bits the EWMH surface
// publishes back out as _NET_WM_STATE atoms: full, float, stick, resize,
// urgent, zaphod, fixed, borderless.
type ClientMode int

const (
	ModeFull ClientMode = iota
	ModeFloat
	ModeStick
	ModeResize
	ModeUrgent
	ModeZaphod
	ModeFixed
	ModeBorderless
)

var allModes = [...]struct {
	mode ClientMode
	bit  wmcore.ClientFlag
}{
	{ModeFull, wmcore.FlagFull},
	{ModeFloat, wmcore.FlagFloat},
	{ModeStick, wmcore.FlagStick},
	{ModeResize, wmcore.FlagResize},
	{ModeUrgent, wmcore.FlagUrgent},
	{ModeZaphod, wmcore.FlagZaphod},
	{ModeFixed, wmcore.FlagFixed},
	{ModeBorderless, wmcore.FlagBorderless},
}

// TranslateClientMode walks every mode this core tracks and reports which
// are set in flags, in the fixed order above. Callers use this to decide
// which _NET_WM_STATE atoms to publish for a client. Note this is not a
// strict inverse of TranslateWMState: both StateAbove and nothing else
// map to FlagFloat, so a float client publishes ModeFloat, never
// StateAbove on the wire.
func TranslateClientMode(flags wmcore.ClientFlag) []ClientMode {
	var out []ClientMode
	for _, m := range allModes {
		if flags.Has(m.bit) {
			out = append(out, m.mode)
		}
	}
	return out
}
