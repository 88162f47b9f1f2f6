package widget

import (
	"testing"

	"github.com/go-drift/anchor/pkg/host"
	"github.com/google/go-cmp/cmp"
)

// plainWidget is the minimal concrete widget for accessor tests.
type plainWidget struct {
	Base
}

func mustElement(t *testing.T, fragment string) *host.NodeElement {
	t.Helper()
	el, err := host.First(fragment)
	if err != nil {
		t.Fatalf("failed to parse fragment: %v", err)
	}
	return el
}

func TestSetOptionThenOption(t *testing.T) {
	w := &plainWidget{}
	Mount(w, mustElement(t, "<div></div>"), nil)

	w.SetOption("a.b.c", "value")
	if got := w.Option("a.b.c"); got != "value" {
		t.Errorf("Option(a.b.c) = %v, want value", got)
	}
}

func TestOptionFallback(t *testing.T) {
	w := &plainWidget{}
	Mount(w, mustElement(t, "<div></div>"), nil)

	if got := w.Option("a.b.c", "fallback"); got != "fallback" {
		t.Errorf("Option with fallback = %v, want fallback", got)
	}
	if got := w.Option("a.b.c"); got != nil {
		t.Errorf("Option without fallback = %v, want nil", got)
	}

	w.SetOption("present", false)
	if got := w.Option("present", "fallback"); got != false {
		t.Errorf("Option(present) = %v, want false (fallback only covers nil)", got)
	}

	w.SetOption("explicit", nil)
	if got := w.Option("explicit", "fallback"); got != "fallback" {
		t.Errorf("Option(explicit nil) = %v, want fallback", got)
	}
}

func TestOptionsReturnsLiveReference(t *testing.T) {
	w := &plainWidget{}
	Mount(w, mustElement(t, "<div></div>"), map[string]any{"a": 1})

	w.Options()["b"] = 2
	if got := w.Option("b"); got != 2 {
		t.Error("mutation through Options() was not visible to Option()")
	}

	whole, ok := w.Option("").(map[string]any)
	if !ok {
		t.Fatalf("Option(\"\") = %T, want map[string]any", w.Option(""))
	}
	whole["c"] = 3
	if got := w.Option("c"); got != 3 {
		t.Error("mutation through Option(\"\") was not visible to Option()")
	}
}

func TestStateAccessors(t *testing.T) {
	w := &plainWidget{}
	Mount(w, mustElement(t, "<div></div>"), nil)

	w.SetState("cursor.row", 3).SetState("cursor.col", 1)
	if got := w.State("cursor.row"); got != 3 {
		t.Errorf("State(cursor.row) = %v, want 3", got)
	}
	if got := w.State("cursor.col"); got != 1 {
		t.Errorf("State(cursor.col) = %v, want 1", got)
	}
	if got := w.State("missing", "fallback"); got != "fallback" {
		t.Errorf("State(missing) = %v, want fallback", got)
	}

	want := map[string]any{
		"cursor": map[string]any{"row": 3, "col": 1},
	}
	if diff := cmp.Diff(want, w.StateMap()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteState(t *testing.T) {
	w := &plainWidget{}
	Mount(w, mustElement(t, "<div></div>"), nil)

	w.SetState("a.b", 1)
	if !w.DeleteState("a.b") {
		t.Error("DeleteState(a.b) = false, want true")
	}
	if w.DeleteState("a.b") {
		t.Error("second DeleteState(a.b) = true, want false")
	}
	if w.DeleteState("missing.path") {
		t.Error("DeleteState(missing.path) = true, want false")
	}
	if got := w.State("a.b"); got != nil {
		t.Errorf("State(a.b) after delete = %v, want nil", got)
	}
}

func TestStateStartsEmptyAndIsNotConfiguration(t *testing.T) {
	w := &plainWidget{}
	el := mustElement(t, `<div data-options='{"x":1}'></div>`)
	Mount(w, el, map[string]any{"y": 2})

	if len(w.StateMap()) != 0 {
		t.Errorf("state after Mount = %v, want empty", w.StateMap())
	}
}

func TestStateMapIsLive(t *testing.T) {
	w := &plainWidget{}
	Mount(w, mustElement(t, "<div></div>"), nil)

	w.StateMap()["direct"] = true
	if got := w.State("direct"); got != true {
		t.Error("mutation through StateMap() was not visible to State()")
	}
}

func TestAccessorsBeforeMountAreSafe(t *testing.T) {
	w := &plainWidget{}

	if got := w.Option("a", 1); got != 1 {
		t.Errorf("Option on unmounted widget = %v, want fallback", got)
	}
	w.SetOption("a.b", 2)
	if got := w.Option("a.b"); got != 2 {
		t.Errorf("Option(a.b) = %v, want 2", got)
	}
	if w.DeleteState("a") {
		t.Error("DeleteState on empty state = true, want false")
	}
}
