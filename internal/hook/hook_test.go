// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package hook

import "testing"

type recorder struct {
	got []any
}

func (r *recorder) Invoke(subject any) { r.got = append(r.got, subject) }

func TestCallDispatchesOnlyMatchingKindAndAction(t *testing.T) {
	b := NewBus()
	clientCreate := &recorder{}
	clientKill := &recorder{}
	tagCreate := &recorder{}

	b.Register(&Hook{Kind: KindClient, Action: ActionCreate, Callback: clientCreate})
	b.Register(&Hook{Kind: KindClient, Action: ActionKill, Callback: clientKill})
	b.Register(&Hook{Kind: KindTag, Action: ActionCreate, Callback: tagCreate})

	b.Call(KindClient, ActionCreate, "win1")

	if len(clientCreate.got) != 1 || clientCreate.got[0] != "win1" {
		t.Fatalf("clientCreate.got = %v, want [win1]", clientCreate.got)
	}
	if len(clientKill.got) != 0 {
		t.Fatalf("clientKill.got = %v, want empty", clientKill.got)
	}
	if len(tagCreate.got) != 0 {
		t.Fatalf("tagCreate.got = %v, want empty", tagCreate.got)
	}
}

func TestCallGlobalDispatchesOnlyMatchingGlobal(t *testing.T) {
	b := NewBus()
	reload := &recorder{}
	start := &recorder{}
	b.Register(&Hook{IsGlobal: true, Glob: GlobalReload, Callback: reload})
	b.Register(&Hook{IsGlobal: true, Glob: GlobalStart, Callback: start})

	b.CallGlobal(GlobalReload, nil)

	if len(reload.got) != 1 {
		t.Fatalf("reload.got = %v, want one call", reload.got)
	}
	if len(start.got) != 0 {
		t.Fatalf("start.got = %v, want empty", start.got)
	}
}

func TestResetDropsAllHooks(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	b.Register(&Hook{Kind: KindClient, Action: ActionCreate, Callback: r})
	b.Reset()
	b.Call(KindClient, ActionCreate, "x")
	if len(r.got) != 0 {
		t.Fatalf("got = %v, want empty after Reset", r.got)
	}
}
