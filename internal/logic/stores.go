package logic

import "valuetracker/internal/domain"

// MemoryItemStore is an in-memory implementation of ItemStore.
// The list is copied on construction and never mutated afterwards.
type MemoryItemStore struct {
	items  []domain.Item
	byName map[string]int
}

// NewMemoryItemStore creates a store holding a copy of items
func NewMemoryItemStore(items []domain.Item) *MemoryItemStore {
	s := &MemoryItemStore{
		items:  make([]domain.Item, len(items)),
		byName: make(map[string]int, len(items)),
	}
	copy(s.items, items)
	for i, item := range s.items {
		s.byName[item.Name] = i
	}
	return s
}

func (s *MemoryItemStore) GetItem(name string) (domain.Item, bool) {
	i, ok := s.byName[name]
	if !ok {
		return domain.Item{}, false
	}
	return s.items[i], true
}

func (s *MemoryItemStore) GetAllItems() []domain.Item {
	// Return a copy to prevent external modification
	result := make([]domain.Item, len(s.items))
	copy(result, s.items)
	return result
}

func (s *MemoryItemStore) Len() int {
	return len(s.items)
}
