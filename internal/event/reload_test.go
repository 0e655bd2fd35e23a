// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package event

import "testing"

func TestReloadRunsStepsInOrder(t *testing.T) {
	var order []string
	r := ReloadSteps{
		EvaluateConfig:      func() error { order = append(order, "config"); return nil },
		SortGrabs:           func() { order = append(order, "grabs") },
		RebuildRegistry:     func() { order = append(order, "registry") },
		PreserveViewIDs:     func() { order = append(order, "viewids") },
		RetagClients:        func() { order = append(order, "retag") },
		ConfigureScreens:    func() { order = append(order, "screens") },
		RefocusUnderPointer: func() { order = append(order, "focus") },
	}
	r.Reload()

	want := []string{"config", "grabs", "registry", "viewids", "retag", "screens", "focus"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestReloadStopsAtFirstStepOnConfigError(t *testing.T) {
	var order []string
	r := ReloadSteps{
		EvaluateConfig: func() error { order = append(order, "config"); return errBoom },
		SortGrabs:      func() { order = append(order, "grabs") },
	}
	r.Reload()
	if len(order) != 1 {
		t.Fatalf("order = %v, want only [config] after evaluation error", order)
	}
}

var errBoom = errBoomType{}

type errBoomType struct{}

func (errBoomType) Error() string { return "boom" }
