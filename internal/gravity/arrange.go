// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package gravity

import "tilewm/internal/wmcore"

// Placeable extends Tileable with the extra bits arrange() needs to pick a
// placement branch.
type Placeable interface {
	Tileable
	IsZaphod() bool
	IsDesktopOrDock() bool
}

// PlacementMode tells the caller whether Arrange already computed the
// client's final geometry (ModeDirect) or whether the client shares a
// tiling gravity with siblings and the caller must gather them and call
// Tile instead (ModeTile).
type PlacementMode int

const (
	ModeDirect PlacementMode = iota
	ModeTile
)

// Arrange implements arrange(client, gravity_id, screen_id)
// branch selection and, for the full/float/desktop-dock branches, the
// resulting geometry. translate/dx/dy carry the "arrange_pending is set or
// the target screen differs from current" float-translation case; dx, dy
// is the new screen's origin minus the old screen's origin.
func Arrange(m Placeable, g *Gravity, screenBounds, displayBounds wmcore.Rect, translate bool, dx, dy int, oldGravityTiling, globalTiling, honorSizeHints bool) (wmcore.Rect, PlacementMode) {
	switch {
	case m.IsFull():
		bounds := screenBounds
		if m.IsZaphod() {
			bounds = displayBounds
		}
		return bounds, ModeDirect

	case m.IsFloating():
		geom := m.Geometry()
		if translate {
			geom = geom.Translate(dx, dy)
		}
		geom = Resize(geom, m.SizeHintsGet(), m.BorderWidthPx(), screenBounds, Policy{
			Floating:       true,
			HonorSizeHints: honorSizeHints,
		})
		return geom, ModeDirect

	case m.IsDesktopOrDock():
		return screenBounds, ModeDirect

	default: // tiled path
		if oldGravityTiling || g.Tiling() || globalTiling {
			return wmcore.Rect{}, ModeTile
		}
		geom := GeometryOf(g, screenBounds)
		geom = Resize(geom, m.SizeHintsGet(), m.BorderWidthPx(), screenBounds, Policy{
			HonorSizeHints: honorSizeHints,
		})
		return geom, ModeDirect
	}
}
