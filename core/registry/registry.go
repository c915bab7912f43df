package registry

import "sync"

// Registry is a process-wide key-value store backing the cmd and cron
// extension registries. Keys can be locked once init-time registration is
// done; a locked key rejects further writes.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the single shared instance.
var GlobalRegistry = &Registry{
	values: make(map[string]interface{}),
	locked: make(map[string]bool),
}

func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores a value. Writes to a locked key are ignored; callers check
// IsLocked first and panic with their own message.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		return
	}
	r.values[key] = value
}

// Lock makes a key immutable.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting reopens a locked key (for tests).
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = false
}
