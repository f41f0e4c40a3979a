package tui

import "testing"

func TestStoreGetOrInit(t *testing.T) {
	store := NewComponentStateStore()

	calls := 0
	init := func() any {
		calls++
		return &NavState{FocusIndex: 7}
	}

	first := store.GetOrInit("scores/game_1", init)
	second := store.GetOrInit("scores/game_1", init)
	if calls != 1 {
		t.Errorf("init calls = %d, want 1", calls)
	}
	if first != second {
		t.Error("repeat access should return the same instance")
	}

	first.(*NavState).ScrollOffset = 3
	if second.(*NavState).ScrollOffset != 3 {
		t.Error("stored instances should alias")
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewComponentStateStore()
	store.GetOrInit("a", func() any { return 1 })
	store.GetOrInit("b", func() any { return 2 })

	store.Remove("a")
	if _, ok := store.Get("a"); ok {
		t.Error("removed key should be gone")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStateForReplacesWrongType(t *testing.T) {
	store := NewComponentStateStore()
	store.GetOrInit("k", func() any { return "not a nav state" })

	nav := StateFor(store, "k", func() *NavState { return &NavState{FocusIndex: 2} })
	if nav.FocusIndex != 2 {
		t.Errorf("focus = %d, want 2", nav.FocusIndex)
	}
	if again := StateFor(store, "k", func() *NavState { return &NavState{} }); again != nav {
		t.Error("typed state should persist once replaced")
	}
}
