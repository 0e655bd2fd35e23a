// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package wmcore

// Rect is an absolute pixel rectangle. All geometry in the core is integer;
// drift introduced by percentage gravity math is bounded to ±1px per edge.
type Rect struct {
	X, Y int
	W, H int
}

// Origin returns the top-left corner as a delta-friendly pair.
func (r Rect) Origin() (int, int) { return r.X, r.Y }

// Translate shifts the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether r fully contains the point (x, y).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlapping rectangle of r and o, or a zero-area
// Rect if they do not overlap. Used by strut-driven work-area shrinking.
func (r Rect) Intersect(o Rect) Rect {
	x1, y1 := max(r.X, o.X), max(r.Y, o.Y)
	x2, y2 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x2 < x1 || y2 < y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Center returns the rectangle's center point.
func (r Rect) Center() (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

// SizeHints mirrors WM_NORMAL_HINTS as consumed by the gravity engine's
// resize policy.
type SizeHints struct {
	MinW, MinH   int
	MaxW, MaxH   int
	IncW, IncH   int
	BaseW, BaseH int
	MinAspect    float64 // h/w lower bound, 0 means unconstrained
	MaxAspect    float64 // h/w upper bound, 0 means unconstrained
}

// Fixed reports whether min and max sizes are equal on both axes, which
// implies the client should be treated as fixed+float.
func (s SizeHints) Fixed() bool {
	return s.MinW > 0 && s.MinW == s.MaxW && s.MinH > 0 && s.MinH == s.MaxH
}
