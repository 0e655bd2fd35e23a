// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package screen

import "tilewm/internal/wmcore"

// PanelItem is one entry in a panel's ordered item list. Views, title,
// tray, sublets, spacer and separator are deliberately heterogeneous
// here; panels are the one place genuine kind-mixing is warranted.
type PanelItem interface {
	PanelItemKind() string
}

// Panel is one of a screen's top/bottom bars.
type Panel struct {
	Items []PanelItem
}

// Screen is a physical output region.
type Screen struct {
	ID       wmcore.ID
	BaseGeom wmcore.Rect
	WorkGeom wmcore.Rect
	ViewID   wmcore.ID

	Top    *Panel
	Bottom *Panel

	Panel1Win wmcore.Window
	Panel2Win wmcore.Window

	struts [4]int // left, right, top, bottom

	Stipple  *string
	Drawable uint32
}

func (s *Screen) EntityID() wmcore.ID         { return s.ID }
func (s *Screen) EntityWindow() wmcore.Window { return wmcore.NoWindow }

// ApplyStrut accumulates a client's _NET_WM_STRUT and recomputes WorkGeom
// as base_geom minus the accumulated struts minus panel heights. Panel
// heights are not modeled as pixel heights here (rendering is out of
// scope); callers that render panels pass their height through the same
// strut slots by convention of treating the panel as a top/bottom strut
// contributor.
func (s *Screen) ApplyStrut(left, right, top, bottom int) {
	s.struts[0] = maxInt(s.struts[0], left)
	s.struts[1] = maxInt(s.struts[1], right)
	s.struts[2] = maxInt(s.struts[2], top)
	s.struts[3] = maxInt(s.struts[3], bottom)
	s.recomputeWorkGeom()
}

func (s *Screen) recomputeWorkGeom() {
	l, r, t, b := s.struts[0], s.struts[1], s.struts[2], s.struts[3]
	s.WorkGeom = wmcore.Rect{
		X: s.BaseGeom.X + l,
		Y: s.BaseGeom.Y + t,
		W: s.BaseGeom.W - l - r,
		H: s.BaseGeom.H - t - b,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampViewID clamps ViewID to [0, viewCount): if a view is removed and
// view_id would be out of range, it is clamped to 0.
func (s *Screen) ClampViewID(viewCount int) {
	if viewCount <= 0 {
		s.ViewID = 0
		return
	}
	if int(s.ViewID) >= viewCount {
		s.ViewID = 0
	}
}
