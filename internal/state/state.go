package state

import "sync"

// Fields is the flat record of user-editable cover values. All values are
// free-form strings and may be empty; empty text fields skip their layout
// step, an empty tint falls back to the render package default.
//
// This is also the persisted preset shape: exactly these five keys.
type Fields struct {
	Tint     string `json:"tint"`
	Title1   string `json:"title1"`
	Title2   string `json:"title2"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
}

type State struct {
	Fields Fields

	// Revision increments on every mutation so the display loop can skip
	// redraws when nothing changed.
	Revision uint64
}

// Store holds the shared cover state. Mutation happens only from API
// handlers and asset-load callbacks; render passes read snapshots, so a
// compose pass never observes a torn record.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetFields(fields Fields) {
	store.mu.Lock()
	store.state.Fields = fields
	store.state.Revision++
	store.mu.Unlock()
}

// Touch bumps the revision without changing fields. Asset-load completions
// use it to force a fresh render.
func (store *Store) Touch() {
	store.mu.Lock()
	store.state.Revision++
	store.mu.Unlock()
}
