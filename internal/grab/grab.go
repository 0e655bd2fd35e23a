// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package grab implements the key/button binding table, the keychain state
// machine, and pure dispatch over a grab's action flags.
package grab

import "sort"

// Flag selects a grab's action category.
type Flag uint32

const (
	FlagSpawn Flag = 1 << iota
	FlagCallback
	FlagViewFocus
	FlagViewSwap
	FlagScreenJump
	FlagWindowMove
	FlagWindowResize
	FlagWindowToggle
	FlagWindowStack
	FlagWindowSelect
	FlagWindowGravity
	FlagWindowKill
	FlagSubtleReload
	FlagSubtleRestart
	FlagSubtleQuit
	FlagChainStart
	FlagChainLink
	FlagChainEnd
)

// Data is the tagged union a grab carries: an integer, a string, or an
// opaque callback handle. Exactly one field is meaningful,
// selected by which Flag the grab carries.
type Data struct {
	Int      int
	Str      string
	Callback Callback
}

// Callback is an opaque handle into the scripted collaborator.
type Callback interface {
	Invoke(subject any)
}

// Grab is one binding: a key code or synthetic mouse-button code plus a
// normalized modifier state.
type Grab struct {
	Code     uint8
	State    uint16 // modifier mask, NumLock/CapsLock already stripped
	IsButton bool   // true if Code is a synthetic mouse-button number, not a keycode
	Flags    Flag
	Data     Data

	// Chain is non-empty iff this grab is a chain prefix.
	Chain []*Grab
}

// IsChainPrefix reports whether g starts a keychain.
func (g *Grab) IsChainPrefix() bool { return len(g.Chain) > 0 }

// Table is a sorted array keyed by (code, state) for binary-search
// lookup.
type Table struct {
	entries []*Grab
}

// NewTable builds a Table from an unsorted slice of grabs.
func NewTable(grabs []*Grab) *Table {
	t := &Table{entries: append([]*Grab(nil), grabs...)}
	t.Sort()
	return t
}

func less(a, b *Grab) bool {
	if a.Code != b.Code {
		return a.Code < b.Code
	}
	return a.State < b.State
}

// Sort re-sorts the table; called after a config reload rebuilds grabs.
func (t *Table) Sort() {
	sort.Slice(t.entries, func(i, j int) bool { return less(t.entries[i], t.entries[j]) })
}

// Lookup binary-searches for the grab matching (code, state).
func (t *Table) Lookup(code uint8, state uint16) (*Grab, bool) {
	key := &Grab{Code: code, State: state}
	i := sort.Search(len(t.entries), func(i int) bool {
		return !less(t.entries[i], key)
	})
	if i < len(t.entries) && t.entries[i].Code == code && t.entries[i].State == state {
		return t.entries[i], true
	}
	return nil, false
}

// All returns every grab in sorted order.
func (t *Table) All() []*Grab { return t.entries }

// FindIn linearly searches scope (a keychain's current reachable set, per
// Keychain.CurrentScope) for the grab matching (code, state). Chain
// sub-lists are small and built in declaration order, so a linear scan
// is the right tool here rather than Table's binary search, which only
// applies to the full top-level table.
func FindIn(scope []*Grab, code uint8, state uint16) (*Grab, bool) {
	for _, g := range scope {
		if g.Code == code && g.State == state {
			return g, true
		}
	}
	return nil, false
}

// ModMaskVariants returns every modifier-mask variant a grab should be
// replicated over so NumLock/CapsLock state does not matter.
func ModMaskVariants(base uint16, numLock, capsLock uint16) []uint16 {
	variants := make([]uint16, 0, 4)
	for _, extra := range []uint16{0, numLock, capsLock, numLock | capsLock} {
		variants = append(variants, base|extra)
	}
	return variants
}

// NormalizeState strips NumLock and CapsLock from a reported modifier
// state before comparing against the grab table.
func NormalizeState(state, numLock, capsLock uint16) uint16 {
	return state &^ (numLock | capsLock)
}
