// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package tag implements the Tag data type and the matcher engine that
// deterministically assigns tags to incoming clients.
package tag

import "tilewm/internal/wmcore"

// Subject is the minimal view of a client the matcher needs. client.Client
// implements this; tests use lightweight fakes.
type Subject interface {
	Name() string
	Instance() string
	Class() string
	Role() string
	TypeFlag() wmcore.ClientFlag
	Sticky() bool
}

// Callback is an opaque handle into the scripted collaborator, invoked
// with the tag and the matching client.
type Callback interface {
	Invoke(subject Subject)
}

// Tag is the named bitmask label a client carries.
type Tag struct {
	ID       wmcore.ID
	Name     string
	Matchers []*Matcher

	GravityID *wmcore.ID
	ScreenID  *wmcore.ID
	Geometry  *wmcore.Rect
	Position  *int

	// ModeFlags are forced onto any client this tag applies to.
	ModeFlags wmcore.ClientFlag
	Stick     bool

	OnMatch Callback
}

func (t *Tag) EntityID() wmcore.ID           { return t.ID }
func (t *Tag) EntityWindow() wmcore.Window   { return wmcore.NoWindow }

// Bit returns the bitmask bit this tag contributes to retag's tag
// bitmask: 1 << (id+1).
func (t *Tag) Bit() uint32 { return 1 << (uint32(t.ID) + 1) }

// DefaultTagID is the reserved id-0 tag applied to any client matching no
// other tag.
const DefaultTagID wmcore.ID = 0

// DefaultBit is tag 0's contribution to a tag bitmask.
const DefaultBit uint32 = 1 << 1
