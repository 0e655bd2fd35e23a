// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package gravity

import (
	"testing"

	"tilewm/internal/wmcore"
)

type fakePlaceable struct {
	fakeMember
	floating bool
	full     bool
	zaphod   bool
	deskDock bool
}

func (f *fakePlaceable) IsFloating() bool      { return f.floating }
func (f *fakePlaceable) IsFull() bool          { return f.full }
func (f *fakePlaceable) IsZaphod() bool        { return f.zaphod }
func (f *fakePlaceable) IsDesktopOrDock() bool { return f.deskDock }

var (
	screenBounds  = wmcore.Rect{X: 100, Y: 0, W: 800, H: 600}
	displayBounds = wmcore.Rect{X: 0, Y: 0, W: 1920, H: 600}
)

func TestArrangeFullTakesScreen(t *testing.T) {
	m := &fakePlaceable{full: true}
	got, mode := Arrange(m, &Gravity{}, screenBounds, displayBounds, false, 0, 0, false, false, false)
	if mode != ModeDirect || got != screenBounds {
		t.Fatalf("Arrange(full) = %+v,%v, want whole screen, direct", got, mode)
	}
}

func TestArrangeZaphodFullSpansDisplay(t *testing.T) {
	m := &fakePlaceable{full: true, zaphod: true}
	got, _ := Arrange(m, &Gravity{}, screenBounds, displayBounds, false, 0, 0, false, false, false)
	if got != displayBounds {
		t.Fatalf("Arrange(full+zaphod) = %+v, want whole display %+v", got, displayBounds)
	}
}

func TestArrangeFloatTranslatesAcrossScreens(t *testing.T) {
	m := &fakePlaceable{floating: true}
	m.geom = wmcore.Rect{X: 110, Y: 10, W: 100, H: 100}
	got, mode := Arrange(m, &Gravity{}, screenBounds, displayBounds, true, 50, 20, false, false, false)
	if mode != ModeDirect {
		t.Fatalf("Arrange(float) mode = %v, want direct", mode)
	}
	if got.X != 160 || got.Y != 30 {
		t.Fatalf("Arrange(float) = %+v, want origin translated by (50,20)", got)
	}
}

func TestArrangeDesktopTakesScreenBase(t *testing.T) {
	m := &fakePlaceable{deskDock: true}
	got, _ := Arrange(m, &Gravity{}, screenBounds, displayBounds, false, 0, 0, false, false, false)
	if got != screenBounds {
		t.Fatalf("Arrange(desktop) = %+v, want full screen", got)
	}
}

func TestArrangeTiledGravityDefersToTile(t *testing.T) {
	m := &fakePlaceable{}
	g := &Gravity{Horz: true}
	_, mode := Arrange(m, g, screenBounds, displayBounds, false, 0, 0, false, false, false)
	if mode != ModeTile {
		t.Fatalf("Arrange(tiling gravity) mode = %v, want ModeTile", mode)
	}
}

func TestArrangeGlobalTilingForcesTileMode(t *testing.T) {
	m := &fakePlaceable{}
	_, mode := Arrange(m, &Gravity{}, screenBounds, displayBounds, false, 0, 0, false, true, false)
	if mode != ModeTile {
		t.Fatalf("Arrange(global tiling) mode = %v, want ModeTile", mode)
	}
}

func TestArrangePlainGravityPlacesDirectly(t *testing.T) {
	m := &fakePlaceable{}
	g := &Gravity{RelX: 25, RelY: 25, RelW: 50, RelH: 50}
	got, mode := Arrange(m, g, wmcore.Rect{W: 100, H: 100}, displayBounds, false, 0, 0, false, false, false)
	if mode != ModeDirect {
		t.Fatalf("Arrange(plain) mode = %v, want direct", mode)
	}
	want := wmcore.Rect{X: 25, Y: 25, W: 50, H: 50}
	if got != want {
		t.Fatalf("Arrange(plain) = %+v, want %+v", got, want)
	}
}
