package memory

import "sync"

// Registry hands out one SessionStore per session id, so repeated requests
// from the same browser hit the same in-process state.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*SessionStore
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*SessionStore)}
}

// ForSession returns the store for sid, creating it on first use.
func (r *Registry) ForSession(sid string) *SessionStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[sid]
	if !ok {
		store = NewSessionStore()
		r.stores[sid] = store
	}
	return store
}
