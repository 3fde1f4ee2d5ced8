package domain

import "fmt"

// List is an ordered collection keyed by entity identity. Insertion order is
// preserved; Set with an already present identity replaces the entry in
// place. A single list instance is owned by one context at a time, it is not
// safe for concurrent use.
type List[T IDObject] struct {
	items []T
}

// NewList builds a list from the given entities. It fails on a non-positive
// identity.
func NewList[T IDObject](items ...T) (List[T], error) {
	var l List[T]
	for _, item := range items {
		if err := l.Set(item); err != nil {
			return List[T]{}, err
		}
	}
	return l, nil
}

// Set inserts the entity or, if its identity is already present, replaces the
// existing entry without moving it.
func (l *List[T]) Set(item T) error {
	id := item.GetID()
	if id <= 0 {
		return fmt.Errorf("list entries need a positive id, got %d", id)
	}
	for i, existing := range l.items {
		if existing.GetID() == id {
			l.items[i] = item
			return nil
		}
	}
	l.items = append(l.items, item)
	return nil
}

// ByID returns the entity with the given identity.
func (l *List[T]) ByID(id int64) (T, bool) {
	for _, item := range l.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Remove drops the entity with the given identity and reports whether it was
// present.
func (l *List[T]) Remove(id int64) bool {
	for i, item := range l.items {
		if item.GetID() == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List[T]) Len() int { return len(l.items) }

// Each visits every entity in insertion order.
func (l *List[T]) Each(fn func(T)) {
	for _, item := range l.items {
		fn(item)
	}
}

// All returns the entries in insertion order. The slice is a copy, the
// entries are not.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Clone returns an independent list with the same entries in the same order.
// Like All, the entries themselves are shared.
func (l *List[T]) Clone() List[T] {
	return List[T]{items: l.All()}
}

type (
	SportTypeList    = List[*SportType]
	SportSubTypeList = List[*SportSubType]
	EquipmentList    = List[*Equipment]
	ExerciseList     = List[*Exercise]
	NoteList         = List[*Note]
	WeightList       = List[*Weight]
)
