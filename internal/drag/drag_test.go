// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package drag

import (
	"testing"

	"tilewm/internal/gravity"
	"tilewm/internal/wmcore"
)

var screen = wmcore.Rect{X: 0, Y: 0, W: 1000, H: 800}

func TestSnapPullsLeftEdgeToScreenEdge(t *testing.T) {
	r := wmcore.Rect{X: 3, Y: 100, W: 200, H: 200}
	got := Snap(r, screen, 2, 10)
	if got.X != 2 {
		t.Fatalf("Snap().X = %d, want 2 (screen.X + border)", got.X)
	}
}

func TestSnapPullsRightEdgeToScreenEdge(t *testing.T) {
	r := wmcore.Rect{X: 793, Y: 100, W: 200, H: 200}
	got := Snap(r, screen, 2, 10)
	if want := screen.X + screen.W - 200 - 2; got.X != want {
		t.Fatalf("Snap().X = %d, want %d", got.X, want)
	}
}

func TestSnapLeavesGeometryUntouchedWhenFarFromEdges(t *testing.T) {
	r := wmcore.Rect{X: 400, Y: 300, W: 200, H: 200}
	got := Snap(r, screen, 2, 10)
	if got != r {
		t.Fatalf("Snap() = %v, want unchanged %v", got, r)
	}
}

func TestStepMoveShiftsByStepInDirection(t *testing.T) {
	r := wmcore.Rect{X: 400, Y: 300, W: 200, H: 200}
	got := StepMove(r, DirRight, 20, screen, 2, 5)
	if got.X != 420 {
		t.Fatalf("StepMove(DirRight).X = %d, want 420", got.X)
	}
}

func TestStepResizeGrowsByIncrementInDirection(t *testing.T) {
	hints := wmcore.SizeHints{IncW: 10, IncH: 10}
	r := wmcore.Rect{X: 100, Y: 100, W: 200, H: 200}
	policy := gravity.Policy{Floating: true}
	got := StepResize(r, DirRight, hints, policy, 2, screen, 5)
	if got.W != 210 {
		t.Fatalf("StepResize(DirRight).W = %d, want 210", got.W)
	}
}

func TestPickEdgesChoosesByPointerRelativeToCenter(t *testing.T) {
	geom := wmcore.Rect{X: 100, Y: 100, W: 200, H: 200}
	e := PickEdges(150, 150, geom) // left-of-center, top-of-center
	if !e.Left || e.Right {
		t.Fatalf("PickEdges() left/right = %v/%v, want left=true right=false", e.Left, e.Right)
	}
	if !e.Top || e.Bottom {
		t.Fatalf("PickEdges() top/bottom = %v/%v, want top=true bottom=false", e.Top, e.Bottom)
	}
}

func TestSessionMoveTranslatesByPointerDelta(t *testing.T) {
	geom := wmcore.Rect{X: 100, Y: 100, W: 200, H: 200}
	s := NewSession(ModeMove, geom, 50, 50, wmcore.SizeHints{}, 2, screen, 5)
	got := s.Update(80, 40)
	if got.X != 130 || got.Y != 90 {
		t.Fatalf("Update() = %+v, want X=130 Y=90", got)
	}
}

func TestSessionResizeGrowsFromPickedEdge(t *testing.T) {
	geom := wmcore.Rect{X: 100, Y: 100, W: 200, H: 200}
	// Start near bottom-right corner: right/bottom edges are active.
	s := NewSession(ModeResize, geom, 290, 290, wmcore.SizeHints{}, 2, screen, 5)
	got := s.Update(320, 310)
	if got.W != 230 || got.H != 220 {
		t.Fatalf("Update() = %+v, want W=230 H=220", got)
	}
	if got.X != 100 || got.Y != 100 {
		t.Fatalf("Update() origin moved = %+v, want unchanged top-left", got)
	}
}

func TestSessionResizeFromTopLeftMovesOrigin(t *testing.T) {
	geom := wmcore.Rect{X: 100, Y: 100, W: 200, H: 200}
	s := NewSession(ModeResize, geom, 110, 110, wmcore.SizeHints{}, 2, screen, 5)
	got := s.Update(90, 95)
	if got.X != 80 || got.Y != 85 {
		t.Fatalf("Update().X/Y = %d/%d, want 80/85", got.X, got.Y)
	}
	if got.W != 220 || got.H != 215 {
		t.Fatalf("Update().W/H = %d/%d, want 220/215", got.W, got.H)
	}
}
