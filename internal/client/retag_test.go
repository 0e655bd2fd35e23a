// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package client

import (
	"regexp"
	"testing"

	"tilewm/internal/tag"
	"tilewm/internal/wmcore"
)

func TestRetagDeterministic(t *testing.T) {
	tags := []*tag.Tag{
		{ID: 0}, // default tag, no matchers
		{
			ID: 1,
			Matchers: []*tag.Matcher{
				{Flags: tag.FieldInstance, Regex: regexp.MustCompile(`^xterm$`)},
			},
			ModeFlags: wmcore.FlagFloat,
		},
	}

	c := &Client{}
	c.SetIdentity("", "xterm", "", "")
	Retag(c, tags)

	want := tags[1].Bit()
	if c.Tags != want {
		t.Fatalf("Retag() tags = %#b, want %#b", c.Tags, want)
	}
	if !c.Flags.Has(wmcore.FlagFloat) {
		t.Fatal("expected matched tag's mode flags to be applied")
	}

	// Determinism: identical input produces identical output.
	c2 := &Client{}
	c2.SetIdentity("", "xterm", "", "")
	Retag(c2, tags)
	if c2.Tags != c.Tags || c2.Flags != c.Flags {
		t.Fatal("Retag() is not deterministic for identical inputs")
	}
}

func TestRetagFallsBackToDefault(t *testing.T) {
	tags := []*tag.Tag{
		{ID: 0},
		{ID: 1, Matchers: []*tag.Matcher{{Flags: tag.FieldInstance, Regex: regexp.MustCompile(`^firefox$`)}}},
	}
	c := &Client{}
	c.SetIdentity("", "xterm", "", "")
	Retag(c, tags)
	if c.Tags != tag.DefaultBit {
		t.Fatalf("Retag() tags = %#b, want default bit %#b", c.Tags, tag.DefaultBit)
	}
}

func TestRetagStickySkipsDefault(t *testing.T) {
	tags := []*tag.Tag{{ID: 0}}
	c := &Client{Flags: wmcore.FlagStick}
	Retag(c, tags)
	if c.Tags != 0 {
		t.Fatalf("Retag() tags = %#b, want 0 for a sticky client matching nothing", c.Tags)
	}
}

func TestRemoveTagBitShiftsHigherBits(t *testing.T) {
	c := &Client{}
	c.Tags = (1 << 1) | (1 << 3) | (1 << 4)
	c.RemoveTagBit(1 << 2) // remove a tag whose bit nothing here holds, bits above shift down
	want := (uint32(1) << 1) | (1 << 2) | (1 << 3)
	if c.Tags != want {
		t.Fatalf("RemoveTagBit() = %#b, want %#b", c.Tags, want)
	}
}
