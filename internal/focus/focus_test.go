// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package focus

import (
	"testing"

	"tilewm/internal/wmcore"
)

type fakeClient struct {
	window      wmcore.Window
	screenID    wmcore.ID
	dead        bool
	desktopDock bool
	takesMsg    bool
	tags        uint32
	urgentCleared bool
	cx, cy      int
}

func (c *fakeClient) EntityWindow() wmcore.Window    { return c.window }
func (c *fakeClient) Dead() bool                     { return c.dead }
func (c *fakeClient) IsDesktopOrDock() bool           { return c.desktopDock }
func (c *fakeClient) ScreenIDOf() wmcore.ID           { return c.screenID }
func (c *fakeClient) TagBits() uint32                 { return c.tags }
func (c *fakeClient) ClearUrgent()                    { c.urgentCleared = true }
func (c *fakeClient) AdvertisesTakeFocusMsg() bool    { return c.takesMsg }
func (c *fakeClient) CenterPoint() (int, int)         { return c.cx, c.cy }
func (c *fakeClient) Visible(visibleTags uint32) bool { return c.tags&visibleTags != 0 }

type fakeInput struct{ took, setPointerRoot bool }

func (f *fakeInput) TakeFocusMessage(c Client)        { f.took = true }
func (f *fakeInput) SetInputFocusPointerRoot(c Client) { f.setPointerRoot = true }

type fakeWarp struct{ x, y int; called bool }

func (f *fakeWarp) WarpTo(x, y int) { f.x, f.y, f.called = x, y, true }

func TestFocusSkipsDeadOrInvisibleClient(t *testing.T) {
	e := NewEngine()
	dead := &fakeClient{window: 1, dead: true, tags: 1}
	e.Focus(dead, dead, 1, false)
	if e.Current() != 0 {
		t.Fatalf("Current() = %v, want 0 (focus skipped)", e.Current())
	}
}

func TestFocusShiftsHistoryAndClearsUrgent(t *testing.T) {
	e := NewEngine()
	a := &fakeClient{window: 1, tags: 1}
	b := &fakeClient{window: 2, tags: 1}

	e.Focus(a, a, 1, false)
	if e.Current() != 1 {
		t.Fatalf("Current() after first focus = %v, want 1", e.Current())
	}

	e.Focus(b, b, 1, false)
	if e.Current() != 2 {
		t.Fatalf("Current() after second focus = %v, want 2", e.Current())
	}
	if e.History()[1] != 1 {
		t.Fatalf("History()[1] = %v, want 1 (previous focus shifted down)", e.History()[1])
	}
	if !b.urgentCleared {
		t.Fatalf("urgent bit was not cleared on newly focused client")
	}
}

func TestFocusUsesTakeFocusMessageWhenAdvertised(t *testing.T) {
	e := NewEngine()
	in := &fakeInput{}
	e.Input = in
	c := &fakeClient{window: 1, tags: 1, takesMsg: true}
	e.Focus(c, c, 1, false)
	if !in.took || in.setPointerRoot {
		t.Fatalf("expected TakeFocusMessage, got took=%v setPointerRoot=%v", in.took, in.setPointerRoot)
	}
}

func TestFocusWarpsOnlyWhenRequestedAndGloballyEnabled(t *testing.T) {
	e := NewEngine()
	w := &fakeWarp{}
	e.Warp = w
	e.GlobalWarp = true
	c := &fakeClient{window: 1, tags: 1, cx: 10, cy: 20}

	e.Focus(c, c, 1, false)
	if w.called {
		t.Fatalf("WarpTo called without warp=true")
	}

	e.Focus(c, c, 1, true)
	if !w.called || w.x != 10 || w.y != 20 {
		t.Fatalf("WarpTo = (%d,%d),%v, want (10,20),true", w.x, w.y, w.called)
	}
}

type fakeResolver struct{ byWindow map[wmcore.Window]Client }

func (r *fakeResolver) Resolve(w wmcore.Window) (Client, bool) {
	c, ok := r.byWindow[w]
	return c, ok
}

func TestNextPass1FindsHistoryCandidateOnSameScreen(t *testing.T) {
	e := NewEngine()
	a := &fakeClient{window: 1, screenID: 0, tags: 1}
	b := &fakeClient{window: 2, screenID: 0, tags: 1}
	e.Focus(a, a, 1, false)
	e.Focus(b, b, 1, false)

	resolver := &fakeResolver{byWindow: map[wmcore.Window]Client{1: a, 2: b}}
	got, ok := e.Next(0, false, resolver, 1, nil, 1)
	if !ok || got.EntityWindow() != 1 {
		t.Fatalf("Next() = %v,%v, want client a (window 1)", got, ok)
	}
}

func TestNextPass2FallsBackToStackingArray(t *testing.T) {
	e := NewEngine()
	a := &fakeClient{window: 1, screenID: 0, tags: 1}
	e.Focus(a, a, 1, false)

	stackBottom := &fakeClient{window: 2, screenID: 0, tags: 1}
	stackTop := &fakeClient{window: 3, screenID: 0, tags: 1}
	resolver := &fakeResolver{byWindow: map[wmcore.Window]Client{1: a}}

	got, ok := e.Next(0, false, resolver, 1, []Candidate{stackBottom, stackTop}, 1)
	if !ok || got.EntityWindow() != 3 {
		t.Fatalf("Next() = %v,%v, want top-of-stack client (window 3)", got, ok)
	}
}

func TestNextPass3OnlyJumpsScreensWhenRequested(t *testing.T) {
	e := NewEngine()
	a := &fakeClient{window: 1, screenID: 0, tags: 1}
	e.Focus(a, a, 1, false)
	resolver := &fakeResolver{byWindow: map[wmcore.Window]Client{1: a}}
	other := &fakeClient{window: 9, screenID: 1, tags: 1}

	if _, ok := e.Next(0, false, resolver, 1, []Candidate{other}, 2); ok {
		t.Fatalf("Next(jump=false) crossed screens, want no candidate")
	}
	got, ok := e.Next(0, true, resolver, 1, []Candidate{other}, 2)
	if !ok || got.EntityWindow() != 9 {
		t.Fatalf("Next(jump=true) = %v,%v, want cross-screen client (window 9)", got, ok)
	}
}
