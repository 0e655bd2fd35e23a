// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

// Package hook implements the typed event bus: a (type-tag, action)
// keyed table of scripted callbacks invoked with a snapshot of the
// firing entity.
package hook

// Kind discriminates the entity a hook fires against.
type Kind uint8

const (
	KindNone Kind = iota
	KindClient
	KindTag
	KindView
)

// Action is the cross-product action a hook listens for.
type Action uint8

const (
	ActionNone Action = iota
	ActionCreate
	ActionMode
	ActionGravity
	ActionFocus
	ActionKill
)

// Global fires without a (kind, action) pair: start, exit, reload, tile.
type Global uint8

const (
	GlobalStart Global = iota
	GlobalExit
	GlobalReload
	GlobalTile
)

// Callback is an opaque handle into the scripted collaborator, owned by
// the script runtime; the core only invokes it, never inspects it.
type Callback interface {
	Invoke(subject any)
}

// Hook is `{type_mask, callback}`. Exactly one of (Kind,
// Action) or Glob is meaningful, discriminated by IsGlobal.
type Hook struct {
	IsGlobal bool
	Glob     Global
	Kind     Kind
	Action   Action
	Callback Callback
}

// Bus holds every registered hook and dispatches call(type, subject).
type Bus struct {
	hooks []*Hook
}

// NewBus returns an empty hook bus.
func NewBus() *Bus { return &Bus{} }

// Register adds h to the bus. Hooks are never removed individually; the
// whole bus is rebuilt on reload.
func (b *Bus) Register(h *Hook) { b.hooks = append(b.hooks, h) }

// Reset drops every registered hook, used during reload before the
// scripted collaborator re-registers its set.
func (b *Bus) Reset() { b.hooks = nil }

// Call dispatches to every hook matching (kind, action) with subject.
func (b *Bus) Call(kind Kind, action Action, subject any) {
	for _, h := range b.hooks {
		if !h.IsGlobal && h.Kind == kind && h.Action == action {
			h.Callback.Invoke(subject)
		}
	}
}

// CallGlobal dispatches every hook registered against g.
func (b *Bus) CallGlobal(g Global, subject any) {
	for _, h := range b.hooks {
		if h.IsGlobal && h.Glob == g {
			h.Callback.Invoke(subject)
		}
	}
}
