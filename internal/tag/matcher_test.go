// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package tag

import (
	"regexp"
	"testing"

	"tilewm/internal/wmcore"
)

type fakeSubject struct {
	name, instance, class, role string
	typeFlag                    wmcore.ClientFlag
	sticky                      bool
}

func (f fakeSubject) Name() string                    { return f.name }
func (f fakeSubject) Instance() string                { return f.instance }
func (f fakeSubject) Class() string                   { return f.class }
func (f fakeSubject) Role() string                    { return f.role }
func (f fakeSubject) TypeFlag() wmcore.ClientFlag     { return f.typeFlag }
func (f fakeSubject) Sticky() bool                    { return f.sticky }

func TestMatcherIllFormedSkipped(t *testing.T) {
	m := &Matcher{}
	if m.passes(fakeSubject{}) {
		t.Fatal("a matcher with no regex and no type flag must never pass")
	}
}

func TestMatcherOrAcrossTopLevel(t *testing.T) {
	tg := &Tag{
		ID: 1,
		Matchers: []*Matcher{
			{Flags: FieldInstance, Regex: regexp.MustCompile(`^xterm$`)},
			{Flags: FieldClass, Regex: regexp.MustCompile(`^Firefox$`)},
		},
	}
	if !Check(tg, fakeSubject{instance: "xterm"}) {
		t.Fatal("expected first top-level matcher to pass")
	}
	if !Check(tg, fakeSubject{class: "Firefox"}) {
		t.Fatal("expected second top-level matcher to pass")
	}
	if Check(tg, fakeSubject{instance: "urxvt", class: "URxvt"}) {
		t.Fatal("expected no matcher to pass")
	}
}

func TestMatcherAndChain(t *testing.T) {
	link2 := &Matcher{Flags: FieldClass, Regex: regexp.MustCompile(`^Firefox$`)}
	link1 := &Matcher{Flags: FieldInstance, Regex: regexp.MustCompile(`^Navigator$`), AndChain: link2}
	tg := &Tag{ID: 1, Matchers: []*Matcher{link1}}

	if !Check(tg, fakeSubject{instance: "Navigator", class: "Firefox"}) {
		t.Fatal("expected chain to pass when every link matches")
	}
	if Check(tg, fakeSubject{instance: "Navigator", class: "Chromium"}) {
		t.Fatal("expected chain to fail when one link mismatches")
	}
}

func TestMatcherTypeFlag(t *testing.T) {
	tg := &Tag{ID: 1, Matchers: []*Matcher{{Flags: FieldType, TypeFlag: wmcore.FlagTypeDialog}}}
	if !Check(tg, fakeSubject{typeFlag: wmcore.FlagTypeDialog}) {
		t.Fatal("expected type match to pass")
	}
	if Check(tg, fakeSubject{typeFlag: wmcore.FlagTypeNormal}) {
		t.Fatal("expected type mismatch to fail")
	}
}
