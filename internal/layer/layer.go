// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package layer implements the total order over clients that keeps
// desktop ≺ tiled ≺ float ≺ fullscreen ordering stable.
package layer

import "sort"

// Category is a client's layering rank.
type Category int

const (
	CategoryDesktop Category = iota
	CategoryTiled
	CategoryFloat
	CategoryFull
)

// Direction is the per-operation tiebreak applied when two clients share a
// category. It exists only to break ties during a single sort pass.
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = -1
)

// Client is the minimal view the comparator needs.
type Client interface {
	Category() Category
}

// Restack sorts members by category, breaking ties within a category
// using dir applied to the member at index triggerIndex: DirUp moves it
// above its same-category peers, DirDown moves it below. It is a stable
// sort, so members are otherwise left in bottom-first stacking order.
//
// The result is antisymmetric, transitive and total over any set of
// members: category gives a strict total preorder, and the
// stable sort plus a single tiebreak resolves every remaining tie.
func Restack(members []Client, triggerIndex int, dir Direction) {
	var trigger Client
	if dir != DirNone && triggerIndex >= 0 && triggerIndex < len(members) {
		trigger = members[triggerIndex]
	}
	sort.SliceStable(members, func(i, j int) bool {
		ci, cj := members[i].Category(), members[j].Category()
		if ci != cj {
			return ci < cj
		}
		if trigger == nil {
			return false
		}
		// Bottom-first order: sorting a member earlier puts it below its
		// peers, so the trigger sorts first on DirDown and last on DirUp.
		if members[i] == trigger && members[j] != trigger {
			return dir == DirDown
		}
		if members[j] == trigger && members[i] != trigger {
			return dir == DirUp
		}
		return false
	})
}
