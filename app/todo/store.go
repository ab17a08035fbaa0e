package todo

import (
	"errors"
	"maps"
	"sync"
)

// ErrNotFound is returned for unknown todo ids.
var ErrNotFound = errors.New("todo not found")

// Item is a todo as posted by the client plus its numeric "id".
type Item map[string]any

// Store keeps todos in memory. Ids start at 1 and are never reused.
type Store struct {
	mu     sync.RWMutex
	items  []Item
	nextID int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// List returns copies of all items in insertion order.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, maps.Clone(item))
	}
	return out
}

// Create stores fields under a new id. A client supplied "id" is overwritten.
func (s *Store) Create(fields map[string]any) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := make(Item, len(fields)+1)
	maps.Copy(item, fields)
	item["id"] = s.nextID
	s.nextID++

	s.items = append(s.items, item)
	return maps.Clone(item)
}

func (s *Store) Get(id int) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return maps.Clone(s.items[i]), nil
	}
	return nil, ErrNotFound
}

func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) index(id int) int {
	for i, item := range s.items {
		if item["id"] == id {
			return i
		}
	}
	return -1
}
