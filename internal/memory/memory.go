package memory

import "sync"

// Well-known keys for tool result caches.
const (
	KeyAvailableSlots   = "available_slots"
	KeyFoundRestaurants = "found_restaurants"
)

// Store is a mutex-guarded in-memory key-value store for short-term session
// state. Tool handlers overwrite entries wholesale after each successful call;
// the orchestration loop never reads them back, they exist so a surrounding
// UI can display last-known results.
type Store struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]any)}
}

// Update adds or replaces the value stored under key.
func (s *Store) Update(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Get retrieves the value stored under key, or nil when absent.
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

// Clear removes all stored entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]any)
}

// All returns a shallow copy of every stored entry.
func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
