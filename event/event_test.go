package event

import (
	"fmt"
	"strings"
	"testing"
)

// Test event types. Several deliberately collide on names to exercise the
// setup-time invariants.

type greetEvent struct {
	Message string `json:"message"`
}

func (greetEvent) EventName() string { return "greeting" }

type tickEvent struct {
	N int `json:"n"`
}

func (tickEvent) EventName() string { return "tick" }

// clashEvent is a distinct type reusing greetEvent's logical name.
type clashEvent struct {
	X int `json:"x"`
}

func (clashEvent) EventName() string { return "greeting" }

// updateA and updateB share the logical name "update" for cross-plugin
// namespacing tests.
type updateA struct {
	Value string `json:"value"`
}

func (updateA) EventName() string { return "update" }

type updateB struct {
	Value string `json:"value"`
}

func (updateB) EventName() string { return "update" }

type separatorNameEvent struct{}

func (separatorNameEvent) EventName() string { return "bad:name" }

type emptyNameEvent struct{}

func (emptyNameEvent) EventName() string { return "" }

// mustPanic asserts fn panics with a message containing want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if want != "" && !strings.Contains(fmt.Sprint(r), want) {
			t.Errorf("expected panic containing %q, got %v", want, r)
		}
	}()
	fn()
}

func TestTypeIDOf_Distinct(t *testing.T) {
	if TypeIDOf[greetEvent]() == TypeIDOf[tickEvent]() {
		t.Error("expected distinct type ids for distinct types")
	}
	if TypeIDOf[updateA]() == TypeIDOf[updateB]() {
		t.Error("expected distinct type ids for same-named types")
	}
}

func TestTypeIDOf_Stable(t *testing.T) {
	if TypeIDOf[greetEvent]() != TypeIDOf[greetEvent]() {
		t.Error("expected the same type id across calls")
	}
}

func TestNameOf(t *testing.T) {
	if got := nameOf[greetEvent](); got != "greeting" {
		t.Errorf("expected greeting, got %q", got)
	}
}
