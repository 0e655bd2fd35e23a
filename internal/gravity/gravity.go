// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package gravity implements named relative rectangles, their absolute
// geometry on a bounds rectangle, and the tiling/resize algorithms that
// place clients.
package gravity

import "tilewm/internal/wmcore"

// Gravity is a named rectangle expressed as percentages of a bounds
// rectangle.
type Gravity struct {
	ID    wmcore.ID
	Quark string // short symbolic name, e.g. "center", "left"

	// RelX, RelY, RelW, RelH are percentages in [0, 100].
	RelX, RelY, RelW, RelH int

	Horz bool
	Vert bool
}

func (g *Gravity) EntityID() wmcore.ID         { return g.ID }
func (g *Gravity) EntityWindow() wmcore.Window { return wmcore.NoWindow }

// Tiling reports whether this gravity carries a tiling direction.
func (g *Gravity) Tiling() bool { return g.Horz || g.Vert }

// GeometryOf computes the absolute geometry of g on bounds:
//
//	( B.x + B.w*x/100, B.y + B.h*y/100, B.w*w/100, B.h*h/100 )
//
// It is a pure function: identical inputs always produce identical
// output, and drift from integer division is bounded to ±1px per edge.
func GeometryOf(g *Gravity, bounds wmcore.Rect) wmcore.Rect {
	return wmcore.Rect{
		X: bounds.X + bounds.W*g.RelX/100,
		Y: bounds.Y + bounds.H*g.RelY/100,
		W: bounds.W * g.RelW / 100,
		H: bounds.H * g.RelH / 100,
	}
}
