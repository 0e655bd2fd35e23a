// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package gravity

import "tilewm/internal/wmcore"

// Tileable is the minimal view of a client the tiling/resize algorithms
// need. *client.Client satisfies it without this package importing
// internal/client, keeping gravity a pure, dependency-free engine.
type Tileable interface {
	Geometry() wmcore.Rect
	SetGeometry(wmcore.Rect)
	BorderWidthPx() int
	SizeHintsGet() wmcore.SizeHints
	IsFloating() bool
	IsFull() bool
	IsDock() bool
	IsFixedMode() bool
	HasResizeMode() bool
}

// Tile implements tile(gravity, screen) over the subset of
// members that are visible, non-float and non-full. honorSizeHints is the
// process-wide flag threaded into each member's Resize call.
//
// Tile is idempotent: called twice in a row with the same members and
// bounds it produces the same geometry both times, because
// every step is pure arithmetic over the inputs.
func Tile(g *Gravity, bounds wmcore.Rect, members []Tileable, honorSizeHints bool) {
	n := len(members)
	if n == 0 {
		return
	}

	if g.Horz {
		width := bounds.W / n
		x := bounds.X
		for i, m := range members {
			w := width
			if i == n-1 {
				w = bounds.X + bounds.W - x // last member absorbs the remainder
			}
			slice := wmcore.Rect{X: x, Y: bounds.Y, W: w, H: bounds.H}
			applyResize(m, slice, bounds, honorSizeHints)
			x += width
		}
		return
	}

	if g.Vert {
		height := bounds.H / n
		y := bounds.Y
		for i, m := range members {
			h := height
			if i == n-1 {
				h = bounds.Y + bounds.H - y
			}
			slice := wmcore.Rect{X: bounds.X, Y: y, W: bounds.W, H: h}
			applyResize(m, slice, bounds, honorSizeHints)
			y += height
		}
		return
	}

	// Neither direction set but tile() was invoked anyway (global tiling
	// flag forced it): every member shares the full gravity rectangle.
	for _, m := range members {
		applyResize(m, bounds, bounds, honorSizeHints)
	}
}

func applyResize(m Tileable, geom, bounds wmcore.Rect, honorSizeHints bool) {
	p := Policy{
		Floating:       m.IsFloating(),
		Full:           m.IsFull(),
		Dock:           m.IsDock(),
		Fixed:          m.IsFixedMode(),
		ResizeMode:     m.HasResizeMode(),
		HonorSizeHints: honorSizeHints,
	}
	m.SetGeometry(Resize(geom, m.SizeHintsGet(), m.BorderWidthPx(), bounds, p))
}
