package hook

import (
	"testing"
)

func TestPreRunFuncAdapter(t *testing.T) {
	called := false
	h := NewPreRunFunc("test", 100, func(info RunInfo) {
		called = true
		if info.Lines != 5 {
			t.Errorf("expected Lines 5, got %d", info.Lines)
		}
	})

	if h.Name() != "test" {
		t.Errorf("expected name 'test', got %q", h.Name())
	}
	if h.Priority() != 100 {
		t.Errorf("expected priority 100, got %d", h.Priority())
	}

	h.PreRun(RunInfo{Lines: 5})
	if !called {
		t.Error("hook function not called")
	}
}

func TestFuncAdapterNilFn(t *testing.T) {
	// Must not panic.
	NewPreRunFunc("nil-pre", 0, nil).PreRun(RunInfo{})
	NewPostRunFunc("nil-post", 0, nil).PostRun(RunInfo{})
}

func TestManagerPreOrdering(t *testing.T) {
	m := NewManager()
	var order []string

	record := func(name string) func(RunInfo) {
		return func(RunInfo) { order = append(order, name) }
	}

	m.RegisterPre(NewPreRunFunc("low", 10, record("low")))
	m.RegisterPre(NewPreRunFunc("high", 1000, record("high")))
	m.RegisterPre(NewPreRunFunc("mid", 500, record("mid")))

	m.RunPre(RunInfo{})

	want := []string{"high", "mid", "low"}
	if len(order) != len(want) {
		t.Fatalf("expected %d hooks run, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("pre order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestManagerPostOrdering(t *testing.T) {
	m := NewManager()
	var order []string

	record := func(name string) func(RunInfo) {
		return func(RunInfo) { order = append(order, name) }
	}

	m.RegisterPost(NewPostRunFunc("high", 1000, record("high")))
	m.RegisterPost(NewPostRunFunc("low", 10, record("low")))

	m.RunPost(RunInfo{})

	// Post-hooks run lowest priority first, highest last.
	if len(order) != 2 || order[0] != "low" || order[1] != "high" {
		t.Errorf("post order = %v, want [low high]", order)
	}
}

func TestManagerReplaceByName(t *testing.T) {
	m := NewManager()
	count := 0

	m.RegisterPre(NewPreRunFunc("dup", 10, func(RunInfo) { count += 1 }))
	m.RegisterPre(NewPreRunFunc("dup", 20, func(RunInfo) { count += 100 }))

	if m.PreHookCount() != 1 {
		t.Fatalf("expected 1 hook after replacement, got %d", m.PreHookCount())
	}

	m.RunPre(RunInfo{})
	if count != 100 {
		t.Errorf("expected replacement hook to run, count = %d", count)
	}
}

func TestManagerUnregister(t *testing.T) {
	m := NewManager()
	m.RegisterPre(NewPreRunFunc("a", 0, nil))
	m.RegisterPost(NewPostRunFunc("a", 0, nil))
	m.RegisterPost(NewPostRunFunc("b", 0, nil))

	if !m.Unregister("a") {
		t.Error("expected Unregister to report removal")
	}
	if m.PreHookCount() != 0 {
		t.Errorf("expected 0 pre hooks, got %d", m.PreHookCount())
	}
	if m.PostHookCount() != 1 {
		t.Errorf("expected 1 post hook, got %d", m.PostHookCount())
	}
	if m.Unregister("missing") {
		t.Error("expected Unregister of missing hook to report false")
	}
}

func TestManagerPanicIsolation(t *testing.T) {
	m := NewManager()
	secondRan := false

	m.RegisterPre(NewPreRunFunc("bad", 100, func(RunInfo) { panic("boom") }))
	m.RegisterPre(NewPreRunFunc("good", 10, func(RunInfo) { secondRan = true }))

	m.RunPre(RunInfo{})

	if !secondRan {
		t.Error("panic in one hook prevented later hooks from running")
	}
	if m.PanicCount() != 1 {
		t.Errorf("expected 1 recorded panic, got %d", m.PanicCount())
	}
}

func TestManagerInfoPassThrough(t *testing.T) {
	m := NewManager()
	payload := map[string]string{"reason": "page-down"}

	var got any
	m.RegisterPost(NewPostRunFunc("capture", 0, func(info RunInfo) {
		got = info.Info
	}))

	m.RunPost(RunInfo{Info: payload})

	gotMap, ok := got.(map[string]string)
	if !ok || gotMap["reason"] != "page-down" {
		t.Errorf("info payload not passed through unmodified: %v", got)
	}
}

func TestManagerNames(t *testing.T) {
	m := NewManager()
	m.RegisterPre(NewPreRunFunc("b", 1, nil))
	m.RegisterPre(NewPreRunFunc("a", 2, nil))

	names := m.PreHookNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("PreHookNames = %v, want [a b]", names)
	}

	m.Clear()
	if m.PreHookCount() != 0 || m.PostHookCount() != 0 {
		t.Error("Clear did not remove all hooks")
	}
}
