// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package gravity

import (
	"testing"

	"tilewm/internal/wmcore"
)

func TestGeometryOfCenter(t *testing.T) {
	g := &Gravity{RelX: 25, RelY: 25, RelW: 50, RelH: 50}
	bounds := wmcore.Rect{X: 0, Y: 0, W: 100, H: 100}
	got := GeometryOf(g, bounds)
	want := wmcore.Rect{X: 25, Y: 25, W: 50, H: 50}
	if got != want {
		t.Fatalf("GeometryOf() = %+v, want %+v", got, want)
	}
}

func TestGeometryOfStableUnderMultiplesOf100(t *testing.T) {
	g := &Gravity{RelX: 50, RelY: 0, RelW: 50, RelH: 100}
	bounds := wmcore.Rect{X: 0, Y: 0, W: 300, H: 300}
	got := GeometryOf(g, bounds)
	want := wmcore.Rect{X: 150, Y: 0, W: 150, H: 300}
	if got != want {
		t.Fatalf("GeometryOf() = %+v, want %+v", got, want)
	}
}

type fakeMember struct {
	geom   wmcore.Rect
	border int
	hints  wmcore.SizeHints
}

func (f *fakeMember) Geometry() wmcore.Rect           { return f.geom }
func (f *fakeMember) SetGeometry(r wmcore.Rect)       { f.geom = r }
func (f *fakeMember) BorderWidthPx() int              { return f.border }
func (f *fakeMember) SizeHintsGet() wmcore.SizeHints  { return f.hints }
func (f *fakeMember) IsFloating() bool                { return false }
func (f *fakeMember) IsFull() bool                    { return false }
func (f *fakeMember) IsDock() bool                    { return false }
func (f *fakeMember) IsFixedMode() bool               { return false }
func (f *fakeMember) HasResizeMode() bool             { return false }

func TestTileHorzSplitsWithRemainderOnLast(t *testing.T) {
	g := &Gravity{Horz: true}
	bounds := wmcore.Rect{X: 0, Y: 0, W: 100, H: 50}
	members := []Tileable{&fakeMember{}, &fakeMember{}, &fakeMember{}}
	Tile(g, bounds, members, false)

	widths := make([]int, len(members))
	for i, m := range members {
		widths[i] = m.(*fakeMember).geom.W
	}
	if widths[0] != 33 || widths[1] != 33 || widths[2] != 34 {
		t.Fatalf("widths = %v, want [33 33 34]", widths)
	}
	if members[1].(*fakeMember).geom.X != 33 {
		t.Fatalf("second member x = %d, want 33", members[1].(*fakeMember).geom.X)
	}
}

func TestTileIsIdempotent(t *testing.T) {
	g := &Gravity{Vert: true}
	bounds := wmcore.Rect{X: 0, Y: 0, W: 200, H: 201}
	members := []Tileable{&fakeMember{}, &fakeMember{}}
	Tile(g, bounds, members, false)
	first := []wmcore.Rect{members[0].(*fakeMember).geom, members[1].(*fakeMember).geom}
	Tile(g, bounds, members, false)
	second := []wmcore.Rect{members[0].(*fakeMember).geom, members[1].(*fakeMember).geom}
	if first[0] != second[0] || first[1] != second[1] {
		t.Fatalf("Tile() is not idempotent: %v != %v", first, second)
	}
}
