// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import (
	"testing"

	"tilewm/internal/tag"
	"tilewm/internal/wmcore"
)

// fakeReader satisfies HintReader with canned answers; the Set* methods
// record that the adoption procedure touched the window.
type fakeReader struct {
	geom             wmcore.Rect
	overrideRedirect bool
	instance, class  string
	name, role       string
	leader           wmcore.Window
	takeFocus        bool
	closeMsg         bool
	typeFlag         wmcore.ClientFlag
	hasType          bool
	hints            wmcore.SizeHints
	hasHints         bool
	input            bool
	motifBorder      bool
	hasMotif         bool
	netState         wmcore.ClientFlag
	transient        wmcore.Window

	borderSet   int
	savedToSet  bool
	withdrawn   bool
	inputMasked bool
}

func (r *fakeReader) Attributes(w wmcore.Window) (wmcore.Rect, bool, error) {
	return r.geom, r.overrideRedirect, nil
}
func (r *fakeReader) ClassHint(w wmcore.Window) (string, string) { return r.instance, r.class }
func (r *fakeReader) Name(w wmcore.Window) string                { return r.name }
func (r *fakeReader) Role(w wmcore.Window) string                { return r.role }
func (r *fakeReader) Leader(w wmcore.Window) (wmcore.Window, bool) {
	return r.leader, r.leader != 0
}
func (r *fakeReader) Protocols(w wmcore.Window) (bool, bool) { return r.takeFocus, r.closeMsg }
func (r *fakeReader) Strut(w wmcore.Window) (int, int, int, int, bool) {
	return 0, 0, 0, 0, false
}
func (r *fakeReader) WindowType(w wmcore.Window) (wmcore.ClientFlag, bool) {
	return r.typeFlag, r.hasType
}
func (r *fakeReader) SizeHints(w wmcore.Window) (wmcore.SizeHints, bool) {
	return r.hints, r.hasHints
}
func (r *fakeReader) InputHint(w wmcore.Window) bool { return r.input }
func (r *fakeReader) MotifBorder(w wmcore.Window) (bool, bool) {
	return r.motifBorder, r.hasMotif
}
func (r *fakeReader) NetWMState(w wmcore.Window) wmcore.ClientFlag { return r.netState }
func (r *fakeReader) TransientFor(w wmcore.Window) (wmcore.Window, bool) {
	return r.transient, r.transient != 0
}
func (r *fakeReader) SetInputMask(w wmcore.Window)              { r.inputMasked = true }
func (r *fakeReader) SetBorder(w wmcore.Window, width int)      { r.borderSet = width }
func (r *fakeReader) SaveContext(w wmcore.Window, id wmcore.ID) {}
func (r *fakeReader) AddToSaveSet(w wmcore.Window)              { r.savedToSet = true }
func (r *fakeReader) SetWithdrawn(w wmcore.Window)              { r.withdrawn = true }

func adoptDeps(r *fakeReader) Deps {
	return Deps{
		Reader:     r,
		Tags:       []*tag.Tag{{ID: 0}},
		ViewCount:  2,
		ScreenSize: wmcore.Rect{W: 1920, H: 1080},
	}
}

func TestAdoptIgnoresOverrideRedirect(t *testing.T) {
	r := &fakeReader{overrideRedirect: true, input: true}
	if _, ok := Adopt(0, 1, adoptDeps(r)); ok {
		t.Fatalf("Adopt() adopted an override-redirect window")
	}
}

func TestAdoptReadsIdentityAndProtocols(t *testing.T) {
	r := &fakeReader{
		geom:      wmcore.Rect{X: 5, Y: 5, W: 300, H: 200},
		instance:  "xterm",
		class:     "XTerm",
		name:      "shell",
		role:      "terminal",
		takeFocus: true,
		closeMsg:  true,
		input:     true,
	}
	c, ok := Adopt(3, 77, adoptDeps(r))
	if !ok {
		t.Fatalf("Adopt() rejected a plain window")
	}
	if c.Instance() != "xterm" || c.Class() != "XTerm" || c.Name() != "shell" || c.Role() != "terminal" {
		t.Fatalf("identity = %q/%q/%q/%q, want hint values", c.Instance(), c.Class(), c.Name(), c.Role())
	}
	if !c.Flags.Has(wmcore.FlagFocusTakesMsg) || !c.Flags.Has(wmcore.FlagCloseTakesMsg) {
		t.Fatalf("protocol flags = %v, want focus-takes-msg and close-takes-msg", c.Flags)
	}
	if !r.inputMasked || !r.savedToSet || !r.withdrawn {
		t.Fatalf("adoption side effects missing: mask=%v saveset=%v withdrawn=%v",
			r.inputMasked, r.savedToSet, r.withdrawn)
	}
	if len(c.Gravities) != 2 {
		t.Fatalf("per-view gravity vector length = %d, want 2", len(c.Gravities))
	}
}

func TestAdoptClampsDegenerateGeometry(t *testing.T) {
	r := &fakeReader{geom: wmcore.Rect{W: 0, H: 0}, input: true}
	c, _ := Adopt(0, 1, adoptDeps(r))
	if c.Geom.W != 1 || c.Geom.H != 1 {
		t.Fatalf("Geom = %+v, want clamped to 1x1", c.Geom)
	}
}

func TestAdoptFixedSizeHintsImplyFixedFloat(t *testing.T) {
	r := &fakeReader{
		geom:     wmcore.Rect{W: 320, H: 240},
		hints:    wmcore.SizeHints{MinW: 320, MinH: 240, MaxW: 320, MaxH: 240},
		hasHints: true,
		input:    true,
	}
	c, _ := Adopt(0, 1, adoptDeps(r))
	if !c.Flags.Has(wmcore.FlagFixed) || !c.Flags.Has(wmcore.FlagFloat) {
		t.Fatalf("Flags = %v, want fixed+float from min==max hints", c.Flags)
	}
}

func TestAdoptDialogTypeAcquiresFloatCenter(t *testing.T) {
	r := &fakeReader{
		geom:     wmcore.Rect{W: 100, H: 100},
		typeFlag: wmcore.FlagTypeDialog,
		hasType:  true,
		input:    true,
	}
	c, _ := Adopt(0, 1, adoptDeps(r))
	if !c.Flags.Has(wmcore.FlagFloat) || !c.Flags.Has(wmcore.FlagCenter) {
		t.Fatalf("Flags = %v, want float+center for a dialog", c.Flags)
	}
}

func TestAdoptTransientFloatsAndHonorsUrgentDialogs(t *testing.T) {
	r := &fakeReader{geom: wmcore.Rect{W: 100, H: 100}, transient: 9, input: true}
	d := adoptDeps(r)
	d.UrgentDialogs = true
	c, _ := Adopt(0, 1, d)
	if !c.Flags.Has(wmcore.FlagFloat) || !c.Flags.Has(wmcore.FlagUrgent) {
		t.Fatalf("Flags = %v, want float+urgent for a transient under urgent-dialogs", c.Flags)
	}
}

func TestAdoptMissingMotifBorderBitMeansBorderless(t *testing.T) {
	r := &fakeReader{
		geom:        wmcore.Rect{W: 100, H: 100},
		hasMotif:    true,
		motifBorder: false,
		input:       true,
	}
	c, _ := Adopt(0, 1, adoptDeps(r))
	if !c.Flags.Has(wmcore.FlagBorderless) {
		t.Fatalf("Flags = %v, want borderless from motif hints", c.Flags)
	}
	if c.BorderWidth != 0 {
		t.Fatalf("BorderWidth = %d, want 0 for a borderless client", c.BorderWidth)
	}
}
