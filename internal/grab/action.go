// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package grab

import (
	"os/exec"
	"syscall"

	"tilewm/internal/layer"
)

// ViewRuntime is the slice of the engine a grab action can drive for
// view-scoped operations.
type ViewRuntime interface {
	FocusView(screenID, viewID int)
	SwapView(screenID, viewID int)
	SelectView(screenID int, forward bool)
	JumpScreen(screenID int)
}

// WindowRuntime is the slice of the engine a grab action can drive for
// window-scoped operations.
type WindowRuntime interface {
	MoveInteractive()
	ResizeInteractive()
	ToggleMode(mask uint32)
	Stack(dir layer.Direction)
	SelectWindow(dir Direction)
	CycleGravity(seq string)
	Kill()
}

// SubtleRuntime is the slice of the engine a grab action can drive for
// lifecycle operations.
type SubtleRuntime interface {
	Reload()
	Restart()
	Quit()
}

// Direction is the directional window-select argument to window-select(dir).
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Runtime aggregates the collaborators an action dispatch needs. A given
// grab only ever touches the slice matching its Flags, so a caller may
// pass a struct with only the relevant fields populated.
type Runtime struct {
	View   ViewRuntime
	Window WindowRuntime
	Subtle SubtleRuntime
	Spawn  func(cmd string) error
}

// DefaultSpawn runs cmd through a shell in its own session (setsid), so
// spawned helpers outlive the WM process.
func DefaultSpawn(cmd string) error {
	c := exec.Command("/bin/sh", "-c", cmd)
	c.Stdin = nil
	c.Stdout = nil
	c.Stderr = nil
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return c.Start()
}

// Execute is the pure dispatch over a grab's Flags. Exactly one flag bit (aside
// from the chain bits, which the keychain already consumed) is expected to
// be set; Execute dispatches on the first one it recognizes.
func Execute(g *Grab, rt Runtime, screenID, viewID int) error {
	if g == nil {
		return nil
	}
	switch {
	case g.Flags&FlagSpawn != 0:
		spawn := rt.Spawn
		if spawn == nil {
			spawn = DefaultSpawn
		}
		return spawn(g.Data.Str)

	case g.Flags&FlagCallback != 0:
		if g.Data.Callback != nil {
			g.Data.Callback.Invoke(g)
		}
		return nil

	case g.Flags&FlagViewFocus != 0:
		if rt.View != nil {
			rt.View.FocusView(screenID, g.Data.Int)
		}
		return nil

	case g.Flags&FlagViewSwap != 0:
		if rt.View != nil {
			rt.View.SwapView(screenID, g.Data.Int)
		}
		return nil

	case g.Flags&FlagScreenJump != 0:
		if rt.View != nil {
			rt.View.JumpScreen(g.Data.Int)
		}
		return nil

	case g.Flags&FlagWindowMove != 0:
		if rt.Window != nil {
			rt.Window.MoveInteractive()
		}
		return nil

	case g.Flags&FlagWindowResize != 0:
		if rt.Window != nil {
			rt.Window.ResizeInteractive()
		}
		return nil

	case g.Flags&FlagWindowToggle != 0:
		if rt.Window != nil {
			rt.Window.ToggleMode(uint32(g.Data.Int))
		}
		return nil

	case g.Flags&FlagWindowStack != 0:
		if rt.Window != nil {
			dir := layer.DirNone
			if g.Data.Int > 0 {
				dir = layer.DirUp
			} else if g.Data.Int < 0 {
				dir = layer.DirDown
			}
			rt.Window.Stack(dir)
		}
		return nil

	case g.Flags&FlagWindowSelect != 0:
		if rt.Window != nil {
			rt.Window.SelectWindow(Direction(g.Data.Int))
		}
		return nil

	case g.Flags&FlagWindowGravity != 0:
		if rt.Window != nil {
			rt.Window.CycleGravity(g.Data.Str)
		}
		return nil

	case g.Flags&FlagWindowKill != 0:
		if rt.Window != nil {
			rt.Window.Kill()
		}
		return nil

	case g.Flags&FlagSubtleReload != 0:
		if rt.Subtle != nil {
			rt.Subtle.Reload()
		}
		return nil

	case g.Flags&FlagSubtleRestart != 0:
		if rt.Subtle != nil {
			rt.Subtle.Restart()
		}
		return nil

	case g.Flags&FlagSubtleQuit != 0:
		if rt.Subtle != nil {
			rt.Subtle.Quit()
		}
		return nil
	}
	return nil
}
