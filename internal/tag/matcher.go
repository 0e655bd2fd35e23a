// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package tag

import (
	"regexp"

	"tilewm/internal/wmcore"
)

// Field selects which client string a Matcher's regex tests.
type Field uint8

const (
	FieldName Field = 1 << iota
	FieldInstance
	FieldClass
	FieldRole
	FieldType
)

// Matcher is one predicate in a tag's (flag-set, optional regex) list.
// AndChain optionally points at another Matcher that must also pass; a
// nil AndChain ends the chain. Each entry of Tag.Matchers is a top-level
// OR element.
type Matcher struct {
	Flags    Field
	Regex    *regexp.Regexp
	TypeFlag wmcore.ClientFlag // meaningful only when Flags&FieldType != 0
	AndChain *Matcher
}

// wellFormed reports whether this single link is usable: it must carry a
// regex or a type flag. Matchers with no regex and no type flag are
// skipped as ill-formed rather than matching trivially.
func (m *Matcher) wellFormed() bool {
	return m.Regex != nil || m.Flags&FieldType != 0
}

// passes evaluates a single link against subject, independent of any chain.
func (m *Matcher) passes(s Subject) bool {
	if !m.wellFormed() {
		return false
	}
	if m.Flags&FieldType != 0 {
		if s.TypeFlag() != m.TypeFlag {
			return false
		}
	}
	if m.Regex == nil {
		return true
	}
	field := m.selectedField(s)
	return m.Regex.MatchString(field)
}

func (m *Matcher) selectedField(s Subject) string {
	switch {
	case m.Flags&FieldName != 0:
		return s.Name()
	case m.Flags&FieldInstance != 0:
		return s.Instance()
	case m.Flags&FieldClass != 0:
		return s.Class()
	case m.Flags&FieldRole != 0:
		return s.Role()
	default:
		// Default field selection mirrors the matcher spec's default of
		// instance+class when no field is named explicitly.
		return s.Instance() + " " + s.Class()
	}
}

// chainPasses walks m and every AndChain link; every link must pass.
func (m *Matcher) chainPasses(s Subject) bool {
	for cur := m; cur != nil; cur = cur.AndChain {
		if !cur.passes(s) {
			return false
		}
	}
	return true
}

// Check implements the tag-client check: any passing top-level chain
// returns true (OR across top-level matchers, AND within a chain).
func Check(t *Tag, s Subject) bool {
	for _, m := range t.Matchers {
		if m.chainPasses(s) {
			return true
		}
	}
	return false
}
