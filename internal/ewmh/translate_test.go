// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package ewmh

import (
	"testing"

	"tilewm/internal/wmcore"
)

func TestTranslateWMStateCoversEveryRecognizedAtom(t *testing.T) {
	cases := []struct {
		atom StateAtom
		bit  wmcore.ClientFlag
	}{
		{StateFullscreen, wmcore.FlagFull},
		{StateAbove, wmcore.FlagFloat},
		{StateSticky, wmcore.FlagStick},
		{StateDemandsAttention, wmcore.FlagUrgent},
	}
	for _, c := range cases {
		bit, ok := TranslateWMState(c.atom)
		if !ok || bit != c.bit {
			t.Fatalf("TranslateWMState(%v) = %v,%v, want %v,true", c.atom, bit, ok, c.bit)
		}
	}
}

func TestTranslateWMStateRejectsUnknownAtom(t *testing.T) {
	if _, ok := TranslateWMState(StateAtom(99)); ok {
		t.Fatalf("TranslateWMState(99) reported ok, want false")
	}
}

func TestTranslateClientModeIsExhaustiveOverEveryModeBit(t *testing.T) {
	flags := wmcore.FlagFull | wmcore.FlagStick | wmcore.FlagFixed
	got := TranslateClientMode(flags)
	want := map[ClientMode]bool{ModeFull: true, ModeStick: true, ModeFixed: true}
	if len(got) != len(want) {
		t.Fatalf("TranslateClientMode() = %v, want 3 modes", got)
	}
	for _, m := range got {
		if !want[m] {
			t.Fatalf("TranslateClientMode() produced unexpected mode %v", m)
		}
	}
}

func TestTranslateClientModeEmptyForNoModeBits(t *testing.T) {
	if got := TranslateClientMode(0); len(got) != 0 {
		t.Fatalf("TranslateClientMode(0) = %v, want empty", got)
	}
}
