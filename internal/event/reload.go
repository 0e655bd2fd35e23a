// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package event

// ReloadSteps bundles the seven reload actions, each implemented by a
// different package; Dispatcher's Reload interface is satisfied by a
// collaborator that runs them in this order.
type ReloadSteps struct {
	EvaluateConfig   func() error
	SortGrabs        func()
	RebuildRegistry  func()
	PreserveViewIDs  func()
	RetagClients     func()
	ConfigureScreens func()
	RefocusUnderPointer func()
}

// Reload runs the seven steps in a fixed order:
// (1) re-run config evaluation, (2) re-sort grabs, (3) rebuild gravities/
// tags/views/grabs/hooks, (4) preserve each screen's view_id if still
// valid, (5) re-read every client's type and rerun retag/toggle_modes,
// (6) re-configure screens, (7) re-focus the client under the pointer.
func (r ReloadSteps) Reload() {
	if r.EvaluateConfig != nil {
		if err := r.EvaluateConfig(); err != nil {
			return
		}
	}
	if r.SortGrabs != nil {
		r.SortGrabs()
	}
	if r.RebuildRegistry != nil {
		r.RebuildRegistry()
	}
	if r.PreserveViewIDs != nil {
		r.PreserveViewIDs()
	}
	if r.RetagClients != nil {
		r.RetagClients()
	}
	if r.ConfigureScreens != nil {
		r.ConfigureScreens()
	}
	if r.RefocusUnderPointer != nil {
		r.RefocusUnderPointer()
	}
}
