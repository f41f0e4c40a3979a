package tui

// ComponentStateStore keeps per-component state alive across frames,
// keyed by a stable path string. Rebuilding a page each frame recreates
// its components; their durable state (selection, scroll) lives here.
type ComponentStateStore struct {
	states map[string]any
}

// NewComponentStateStore creates an empty store.
func NewComponentStateStore() *ComponentStateStore {
	return &ComponentStateStore{states: make(map[string]any)}
}

// GetOrInit returns the state stored under key, calling init to create
// it on first access. The same key always yields the same instance
// until it is removed.
func (s *ComponentStateStore) GetOrInit(key string, init func() any) any {
	if state, ok := s.states[key]; ok {
		return state
	}
	state := init()
	s.states[key] = state
	return state
}

// Get returns the state under key, if present.
func (s *ComponentStateStore) Get(key string) (any, bool) {
	state, ok := s.states[key]
	return state, ok
}

// Remove drops the state under key.
func (s *ComponentStateStore) Remove(key string) {
	delete(s.states, key)
}

// Len returns the number of stored states.
func (s *ComponentStateStore) Len() int { return len(s.states) }

// StateFor is the typed accessor over GetOrInit. A stored value of the
// wrong type is replaced, not returned.
func StateFor[T any](s *ComponentStateStore, key string, init func() T) T {
	if state, ok := s.states[key]; ok {
		if typed, ok := state.(T); ok {
			return typed
		}
	}
	state := init()
	s.states[key] = state
	return state
}
