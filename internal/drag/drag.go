// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package drag implements the directional-step and interactive move/resize
// controller.
package drag

import "tilewm/internal/wmcore"

// Mode selects whether a drag session moves or resizes.
type Mode int

const (
	ModeMove Mode = iota
	ModeResize
)

// Direction is the directional-step argument: the optional direction
// paired with a (client, mode) pair when invoking a step.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Snap applies the snap rule independently on each axis: if
// |edge_client - edge_screen| <= snap, that edge of the client is set to
// that edge of the screen plus/minus border width.
func Snap(r wmcore.Rect, screen wmcore.Rect, border, snap int) wmcore.Rect {
	if snap <= 0 {
		return r
	}
	left, top := r.X, r.Y
	right, bottom := r.X+r.W, r.Y+r.H
	screenRight, screenBottom := screen.X+screen.W, screen.Y+screen.H

	if abs(left-screen.X) <= snap {
		r.X = screen.X + border
	} else if abs(right-screenRight) <= snap {
		r.X = screenRight - r.W - border
	}
	if abs(top-screen.Y) <= snap {
		r.Y = screen.Y + border
	} else if abs(bottom-screenBottom) <= snap {
		r.Y = screenBottom - r.H - border
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
