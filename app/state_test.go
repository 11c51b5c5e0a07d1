package app

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

type testState struct {
	n int
}

func TestStateContainer_Manage(t *testing.T) {
	c := NewStateContainer()

	if !c.Manage(&testState{n: 1}) {
		t.Fatal("expected first Manage to succeed")
	}
	if c.Manage(&testState{n: 2}) {
		t.Error("expected second Manage of same type to fail")
	}

	v, ok := c.Get(reflect.TypeOf((*testState)(nil)))
	if !ok {
		t.Fatal("expected managed value")
	}
	if v.(*testState).n != 1 {
		t.Errorf("expected first value to win, got %d", v.(*testState).n)
	}
}

func TestStateContainer_GetOrInit_Once(t *testing.T) {
	c := NewStateContainer()
	key := reflect.TypeOf((*testState)(nil))

	var inits atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrInit(key, func() any {
				inits.Add(1)
				return &testState{}
			})
		}()
	}
	wg.Wait()

	if got := inits.Load(); got != 1 {
		t.Errorf("expected init to run once, ran %d times", got)
	}
}

func TestGetOrManage_Idempotent(t *testing.T) {
	local := NewLocal()

	first := GetOrManage(local, func() *testState { return &testState{n: 7} })
	second := GetOrManage(local, func() *testState { return &testState{n: 9} })

	if first != second {
		t.Error("expected the same managed instance")
	}
	if first.n != 7 {
		t.Errorf("expected first construction to win, got %d", first.n)
	}

	got, ok := State[testState](local)
	if !ok || got != first {
		t.Error("expected State to return the managed instance")
	}
}

func TestState_Missing(t *testing.T) {
	local := NewLocal()

	if _, ok := State[testState](local); ok {
		t.Error("expected no managed value")
	}
}
