package diagram

import (
	"iter"
	"slices"
)

// Store maps ids to objects of one kind. Scans run in ascending id order so
// "first match" is the oldest object.
type Store[T any] struct {
	items map[ID]*T
	order []ID
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[ID]*T)}
}

// Insert adds v under id. Ids come from Scene.NextID and only grow, which
// keeps order sorted.
func (s *Store[T]) Insert(id ID, v *T) {
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

func (s *Store[T]) Get(id ID) (*T, bool) {
	v, ok := s.items[id]
	return v, ok
}

func (s *Store[T]) Remove(id ID) (*T, bool) {
	v, ok := s.items[id]
	if !ok {
		return nil, false
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return v, true
}

func (s *Store[T]) Len() int {
	return len(s.items)
}

func (s *Store[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for _, id := range s.order {
			if !yield(id, s.items[id]) {
				return
			}
		}
	}
}

// Find returns the first object matching pred.
func (s *Store[T]) Find(pred func(*T) bool) (*T, bool) {
	for _, v := range s.All() {
		if pred(v) {
			return v, true
		}
	}
	return nil, false
}
