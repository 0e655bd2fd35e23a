// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package grab

import "testing"

func TestTableLookupFindsExactMatch(t *testing.T) {
	tb := NewTable([]*Grab{
		{Code: 10, State: 1, Flags: FlagSpawn},
		{Code: 5, State: 0, Flags: FlagWindowKill},
		{Code: 10, State: 0, Flags: FlagViewFocus},
	})
	g, ok := tb.Lookup(10, 0)
	if !ok || g.Flags != FlagViewFocus {
		t.Fatalf("Lookup(10,0) = %v,%v, want FlagViewFocus grab", g, ok)
	}
	g, ok = tb.Lookup(10, 1)
	if !ok || g.Flags != FlagSpawn {
		t.Fatalf("Lookup(10,1) = %v,%v, want FlagSpawn grab", g, ok)
	}
	if _, ok := tb.Lookup(99, 0); ok {
		t.Fatalf("Lookup(99,0) found a grab, want none")
	}
}

func TestModMaskVariantsCoversPowerSet(t *testing.T) {
	got := ModMaskVariants(0x8, 0x10, 0x2)
	want := map[uint16]bool{0x8: true, 0x18: true, 0xA: true, 0x1A: true}
	if len(got) != len(want) {
		t.Fatalf("ModMaskVariants() = %v, want 4 variants", got)
	}
	for _, v := range got {
		if !want[v] {
			t.Fatalf("ModMaskVariants() produced unexpected variant %#x", v)
		}
	}
}

func TestNormalizeStateStripsLockBits(t *testing.T) {
	if got := NormalizeState(0x18, 0x10, 0x0); got != 0x8 {
		t.Fatalf("NormalizeState() = %#x, want 0x8", got)
	}
}

type fakePanel struct{ last string }

func (p *fakePanel) SetChainPrefix(s string) { p.last = s }

func TestKeychainArmsOnChainStartAndExecutesOnEnd(t *testing.T) {
	end := &Grab{Code: 2, Flags: FlagChainEnd, Data: Data{Int: 42}}
	prefix := &Grab{Code: 1, Flags: FlagChainStart, Data: Data{Str: "w"}, Chain: []*Grab{end}}

	panel := &fakePanel{}
	k := NewKeychain(panel)

	if exec := k.Press(prefix, false); exec != nil {
		t.Fatalf("Press(prefix) returned %v, want nil (armed, not executed)", exec)
	}
	if k.State() != StateArmed {
		t.Fatalf("State() = %v, want StateArmed", k.State())
	}
	if panel.last != "w" {
		t.Fatalf("panel prefix = %q, want %q", panel.last, "w")
	}

	exec := k.Press(end, false)
	if exec != end {
		t.Fatalf("Press(end) = %v, want end grab to execute", exec)
	}
	if k.State() != StateIdle {
		t.Fatalf("State() after chain-end = %v, want StateIdle", k.State())
	}
	if panel.last != "" {
		t.Fatalf("panel prefix after chain-end = %q, want empty", panel.last)
	}
}

func TestKeychainStaysArmedOnModifierOnlyPress(t *testing.T) {
	end := &Grab{Code: 2, Flags: FlagChainEnd}
	prefix := &Grab{Code: 1, Flags: FlagChainStart, Chain: []*Grab{end}}
	k := NewKeychain(nil)
	k.Press(prefix, false)

	if exec := k.Press(nil, true); exec != nil {
		t.Fatalf("Press(nil, modifierOnly) = %v, want nil", exec)
	}
	if k.State() != StateArmed {
		t.Fatalf("State() after modifier-only press = %v, want StateArmed", k.State())
	}
}

func TestKeychainCancelsOnNonMatchingInput(t *testing.T) {
	end := &Grab{Code: 2, Flags: FlagChainEnd}
	prefix := &Grab{Code: 1, Flags: FlagChainStart, Chain: []*Grab{end}}
	k := NewKeychain(nil)
	k.Press(prefix, false)

	if exec := k.Press(nil, false); exec != nil {
		t.Fatalf("Press(nil, false) = %v, want nil", exec)
	}
	if k.State() != StateIdle {
		t.Fatalf("State() after cancel = %v, want StateIdle", k.State())
	}
}

func TestKeychainCurrentScopeExcludesLinkAndEndWhenIdle(t *testing.T) {
	top := []*Grab{
		{Code: 1, Flags: FlagSpawn},
		{Code: 2, Flags: FlagChainLink},
		{Code: 3, Flags: FlagChainEnd},
		{Code: 4, Flags: FlagChainStart, Chain: []*Grab{{Code: 5}}},
	}
	k := NewKeychain(nil)
	scope := k.CurrentScope(top)
	if len(scope) != 2 {
		t.Fatalf("CurrentScope() idle = %v, want 2 reachable top-level grabs", scope)
	}
}

func TestExecuteDispatchesSpawn(t *testing.T) {
	called := ""
	rt := Runtime{Spawn: func(cmd string) error { called = cmd; return nil }}
	g := &Grab{Flags: FlagSpawn, Data: Data{Str: "xterm"}}
	if err := Execute(g, rt, 0, 0); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if called != "xterm" {
		t.Fatalf("spawn called with %q, want xterm", called)
	}
}

type fakeCallback struct{ invoked bool }

func (c *fakeCallback) Invoke(subject any) { c.invoked = true }

func TestExecuteDispatchesCallback(t *testing.T) {
	cb := &fakeCallback{}
	g := &Grab{Flags: FlagCallback, Data: Data{Callback: cb}}
	if err := Execute(g, Runtime{}, 0, 0); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !cb.invoked {
		t.Fatalf("callback was not invoked")
	}
}
