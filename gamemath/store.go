package gamemath

import (
	"sort"
	"sync"
)

// Store holds game math by model_id for the lifetime of the process.
type Store struct {
	mu   sync.RWMutex
	math map[string]*GameMath
}

// NewStore returns a store with the classic table registered.
func NewStore() *Store {
	s := &Store{math: make(map[string]*GameMath)}
	if err := s.Register(Classic()); err != nil {
		panic(err)
	}
	return s
}

// Register stores game math by its model_id. Overwrites if exists.
// Nil math or an empty model_id is ignored.
func (s *Store) Register(math *GameMath) error {
	if math == nil || math.ModelID == "" {
		return nil
	}
	if err := math.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.math[math.ModelID] = math
	return nil
}

// Get returns game math for the given model_id, or nil.
func (s *Store) Get(modelID string) *GameMath {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.math[modelID]
	if !ok {
		return nil
	}
	return m
}

// ModelIDs lists registered model ids, sorted.
func (s *Store) ModelIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.math))
	for id := range s.math {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
