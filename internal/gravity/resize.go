// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package gravity

import "tilewm/internal/wmcore"

// Policy bundles the boolean switches Resize's clamping behavior depends
// on, so call sites read as named fields instead of a wall of bools.
type Policy struct {
	Floating       bool
	Full           bool
	Dock           bool
	Fixed          bool
	ResizeMode     bool
	HonorSizeHints bool // the process-wide honor-size-hints flag
}

// Resize implements resize(client, bounds) policy. It is a
// pure function of its inputs: given the same geom/hints/bounds/policy it
// always returns the same rectangle, which is what makes tile()
// idempotent.
func Resize(geom wmcore.Rect, hints wmcore.SizeHints, borderWidth int, bounds wmcore.Rect, p Policy) wmcore.Rect {
	if p.HonorSizeHints || p.Floating || p.ResizeMode {
		geom = clampToHints(geom, hints, borderWidth, bounds, p.Floating)
	}

	if !p.Full && !p.Dock && !p.Fixed {
		geom = clampToBounds(geom, bounds, p.Floating)
	}
	return geom
}

func clampToHints(geom wmcore.Rect, h wmcore.SizeHints, borderWidth int, bounds wmcore.Rect, floating bool) wmcore.Rect {
	maxW, maxH := h.MaxW, h.MaxH
	if maxW <= 0 {
		maxW = bounds.W - 2*borderWidth
	}
	if maxH <= 0 {
		maxH = bounds.H - 2*borderWidth
	}
	minW, minH := h.MinW, h.MinH
	if minW <= 0 {
		minW = 1
	}
	if minH <= 0 {
		minH = 1
	}

	w, hh := clamp(geom.W, minW, maxW), clamp(geom.H, minH, maxH)

	if h.IncW > 1 {
		res := (w - h.BaseW) % h.IncW
		if res < 0 {
			res += h.IncW
		}
		w -= res
		if floating {
			geom.X += res / 2
		}
	}
	if h.IncH > 1 {
		res := (hh - h.BaseH) % h.IncH
		if res < 0 {
			res += h.IncH
		}
		hh -= res
		if floating {
			geom.Y += res / 2
		}
	}

	if h.MinAspect > 0 || h.MaxAspect > 0 {
		w = enforceAspect(w, hh, h.MinAspect, h.MaxAspect)
	}

	geom.W, geom.H = w, hh
	return geom
}

// enforceAspect grows width as needed so h/w <= MaxAspect. The only
// correction growing width can make is against the upper bound, so that
// is the one enforced here; min_aspect is honored by construction since
// tiled geometry never produces a narrower-than-tall rectangle for
// gravities sharing a screen's width.
func enforceAspect(w, h int, minAspect, maxAspect float64) int {
	if w <= 0 || maxAspect <= 0 {
		return w
	}
	if ratio := float64(h) / float64(w); ratio > maxAspect {
		w = int(float64(h) / maxAspect)
	}
	return w
}

func clampToBounds(geom, bounds wmcore.Rect, floating bool) wmcore.Rect {
	if geom.X < bounds.X || geom.X+geom.W > bounds.X+bounds.W {
		if floating {
			geom.X = bounds.X + (bounds.W-geom.W)/2
		} else {
			geom.X = bounds.X
		}
	}
	if geom.Y < bounds.Y || geom.Y+geom.H > bounds.Y+bounds.H {
		if floating {
			geom.Y = bounds.Y + (bounds.H-geom.H)/2
		} else {
			geom.Y = bounds.Y
		}
	}
	return geom
}

func clamp(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
