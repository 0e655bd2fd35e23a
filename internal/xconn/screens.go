// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package xconn

import (
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xinerama"

	"tilewm/internal/wmcore"
)

// EnumerateScreens tries Xrandr first, then Xinerama, falling back to a
// single screen covering the full display size if neither extension is
// available. noRandr forces the Xrandr path off (the `-n` CLI flag).
func (c *Conn) EnumerateScreens(noRandr bool) ([]wmcore.Rect, error) {
	if !noRandr {
		if rects, ok := c.enumerateRandr(); ok {
			return rects, nil
		}
	}
	if rects, ok := c.enumerateXinerama(); ok {
		return rects, nil
	}
	screen := c.X.Screen()
	return []wmcore.Rect{{
		X: 0, Y: 0,
		W: int(screen.WidthInPixels), H: int(screen.HeightInPixels),
	}}, nil
}

func (c *Conn) enumerateRandr() ([]wmcore.Rect, bool) {
	if err := randr.Init(c.X.Conn()); err != nil {
		return nil, false
	}
	root := c.X.RootWin()
	res, err := randr.GetScreenResources(c.X.Conn(), root).Reply()
	if err != nil || len(res.Crtcs) == 0 {
		return nil, false
	}
	var rects []wmcore.Rect
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(c.X.Conn(), crtc, res.ConfigTimestamp).Reply()
		if err != nil || info.Width == 0 || info.Height == 0 {
			continue
		}
		rects = append(rects, wmcore.Rect{
			X: int(info.X), Y: int(info.Y),
			W: int(info.Width), H: int(info.Height),
		})
	}
	if len(rects) == 0 {
		return nil, false
	}
	return rects, true
}

func (c *Conn) enumerateXinerama() ([]wmcore.Rect, bool) {
	if err := xinerama.Init(c.X.Conn()); err != nil {
		return nil, false
	}
	reply, err := xinerama.QueryScreens(c.X.Conn()).Reply()
	if err != nil || len(reply.ScreenInfo) == 0 {
		return nil, false
	}
	rects := make([]wmcore.Rect, len(reply.ScreenInfo))
	for i, info := range reply.ScreenInfo {
		rects[i] = wmcore.Rect{
			X: int(info.XOrg), Y: int(info.YOrg),
			W: int(info.Width), H: int(info.Height),
		}
	}
	return rects, true
}
