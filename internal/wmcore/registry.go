// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package wmcore

import "fmt"

// Entity is anything the Registry can look up by X window.
type Entity interface {
	EntityID() ID
	EntityWindow() Window
}

// Registry is the single process-wide owner of every entity kind. It is
// exclusively mutated from the event dispatcher's goroutine;
// nothing in this package introduces locking.
type Registry struct {
	byWindow map[Window]Entity

	clients  []Entity
	tags     []Entity
	views    []Entity
	gravities []Entity
	screens  []Entity
	grabs    []Entity
	hooks    []Entity
	trays    []Entity
	sublets  []Entity

	// VisibleTags is the OR of tags of every screen's current view.
	VisibleTags uint32
	// VisibleViews has one bit set per screen's current view id.
	VisibleViews uint32
	// UrgentTags is the OR of tags carried by any urgent client.
	UrgentTags uint32
	// ClientTags is the OR of tags of every alive client.
	ClientTags uint32

	Flags RunFlag

	// OnUrgentChange, if set, is invoked whenever UrgentTags transitions
	// between zero and non-zero.
	OnUrgentChange func(urgent bool)
}

// NewRegistry returns an empty registry with the run flag set.
func NewRegistry() *Registry {
	return &Registry{
		byWindow: make(map[Window]Entity),
		Flags:    FlagRun,
	}
}

// Kind identifies one of the Registry's per-kind collections.
type Kind int

const (
	KindClient Kind = iota
	KindTag
	KindView
	KindGravity
	KindScreen
	KindGrab
	KindHook
	KindTray
	KindSublet
)

func (r *Registry) slot(k Kind) *[]Entity {
	switch k {
	case KindClient:
		return &r.clients
	case KindTag:
		return &r.tags
	case KindView:
		return &r.views
	case KindGravity:
		return &r.gravities
	case KindScreen:
		return &r.screens
	case KindGrab:
		return &r.grabs
	case KindHook:
		return &r.hooks
	case KindTray:
		return &r.trays
	case KindSublet:
		return &r.sublets
	default:
		panic(fmt.Sprintf("wmcore: unknown kind %d", k))
	}
}

// Add appends e to its kind's collection and, if it owns a window, indexes
// it for Find. Exactly one entity owns each window, so Add panics on a
// window collision - that is a programming error in a caller, not a
// runtime condition to recover from.
func (r *Registry) Add(k Kind, e Entity) {
	s := r.slot(k)
	*s = append(*s, e)
	if w := e.EntityWindow(); w != NoWindow {
		if _, dup := r.byWindow[w]; dup {
			panic(fmt.Sprintf("wmcore: window %#x already owned", w))
		}
		r.byWindow[w] = e
	}
}

// Find resolves a window to its owning entity.
func (r *Registry) Find(w Window) (Entity, bool) {
	e, ok := r.byWindow[w]
	return e, ok
}

// ByIndex returns the i'th entity of kind k.
func (r *Registry) ByIndex(k Kind, i int) (Entity, bool) {
	s := *r.slot(k)
	if i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

// All returns the live slice for kind k in registration/iteration order.
// Callers must not mutate the returned slice.
func (r *Registry) All(k Kind) []Entity {
	return *r.slot(k)
}

// Len returns the number of registered entities of kind k.
func (r *Registry) Len(k Kind) int {
	return len(*r.slot(k))
}

// Remove deletes the entity at index i from kind k's collection, shifting
// every higher index down by one and removing its window mapping if any.
// It returns nothing; callers (clients storing per-view gravity indices,
// screens storing view indices) renumber their own references from i.
func (r *Registry) Remove(k Kind, i int) {
	s := r.slot(k)
	if i < 0 || i >= len(*s) {
		return
	}
	e := (*s)[i]
	if w := e.EntityWindow(); w != NoWindow {
		delete(r.byWindow, w)
	}
	*s = append((*s)[:i], (*s)[i+1:]...)
}

// Reorder replaces kind k's collection with order, which must be a
// permutation of the current collection. The client collection's order is
// the stacking order (bottom-first), so the layering comparator's result
// is written back through here.
func (r *Registry) Reorder(k Kind, order []Entity) {
	s := r.slot(k)
	if len(order) != len(*s) {
		panic(fmt.Sprintf("wmcore: Reorder length %d != %d", len(order), len(*s)))
	}
	*s = append((*s)[:0], order...)
}

// SetUrgentTags recomputes UrgentTags and fires OnUrgentChange on a
// zero<->non-zero transition.
func (r *Registry) SetUrgentTags(tags uint32) {
	was := r.UrgentTags != 0
	r.UrgentTags = tags
	is := r.UrgentTags != 0
	if was != is && r.OnUrgentChange != nil {
		r.OnUrgentChange(is)
	}
}
