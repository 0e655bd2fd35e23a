// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package drag

import (
	"tilewm/internal/gravity"
	"tilewm/internal/wmcore"
)

// Edges records which rectangle edges an interactive resize moves, picked
// once from the initial pointer position relative to the client's center:
// left/right based on which side of center the pointer started on, same
// for top/bottom.
type Edges struct {
	Left, Right bool
	Top, Bottom bool
}

// PickEdges chooses which edges move during an interactive resize, given
// the pointer's starting position and the client's original geometry.
func PickEdges(startX, startY int, geom wmcore.Rect) Edges {
	cx, cy := geom.Center()
	return Edges{
		Left:   startX < cx,
		Right:  startX >= cx,
		Top:    startY < cy,
		Bottom: startY >= cy,
	}
}

// Session is a live interactive move/resize drag. It tracks only the geometry math; the caller owns
// the pointer/server grab and applies each candidate geometry.
type Session struct {
	mode     Mode
	origin   wmcore.Rect
	startX   int
	startY   int
	edges    Edges
	hints    wmcore.SizeHints
	border   int
	screen   wmcore.Rect
	snap     int
}

// NewSession begins a drag over geom starting at pointer (startX, startY).
// For ModeResize, the active edges are fixed for the lifetime of the
// session at the point PickEdges is evaluated against geom.
func NewSession(mode Mode, geom wmcore.Rect, startX, startY int, hints wmcore.SizeHints, border int, screen wmcore.Rect, snap int) *Session {
	s := &Session{
		mode:   mode,
		origin: geom,
		startX: startX,
		startY: startY,
		hints:  hints,
		border: border,
		screen: screen,
		snap:   snap,
	}
	if mode == ModeResize {
		s.edges = PickEdges(startX, startY, geom)
	}
	return s
}

// Update computes the candidate geometry for the pointer now at (x, y),
// applied by the caller on every MotionNotify.
func (s *Session) Update(x, y int) wmcore.Rect {
	dx, dy := x-s.startX, y-s.startY
	if s.mode == ModeMove {
		return s.origin.Translate(dx, dy)
	}
	return s.resizeAt(dx, dy)
}

func (s *Session) resizeAt(dx, dy int) wmcore.Rect {
	r := s.origin
	if s.edges.Left {
		r.X += dx
		r.W -= dx
	} else if s.edges.Right {
		r.W += dx
	}
	if s.edges.Top {
		r.Y += dy
		r.H -= dy
	} else if s.edges.Bottom {
		r.H += dy
	}
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

// Finish applies the resize refitting policy and snap rule to the final
// geometry at release.
func (s *Session) Finish(x, y int, policy gravity.Policy) wmcore.Rect {
	r := s.Update(x, y)
	r = gravity.Resize(r, s.hints, s.border, s.screen, policy)
	return Snap(r, s.screen, s.border, s.snap)
}
