package ecs

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownID is returned by every accessor given an id the store does not hold.
var ErrUnknownID = errors.New("unknown id")

// Store is an id-indexed entity collection with value semantics: mutating
// methods return a new Store and leave the receiver untouched. Iteration
// follows insertion order. The zero value is an empty store.
type Store struct {
	nextID EntityID
	order  []EntityID
	byID   map[EntityID]Entity
}

// New builds a store holding entities under ids 0..len-1 in input order.
func New(entities ...Entity) Store {
	s := Store{
		order: make([]EntityID, 0, len(entities)),
		byID:  make(map[EntityID]Entity, len(entities)),
	}
	for _, e := range entities {
		s.insert(e)
	}
	return s
}

// Len reports the number of live entities.
func (s Store) Len() int { return len(s.order) }

// NextID is the id the next Add will allocate. It is greater than every id
// ever allocated from this store's lineage.
func (s Store) NextID() EntityID { return s.nextID }

// Has reports whether id is present.
func (s Store) Has(id EntityID) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns the entity stored under id.
func (s Store) Get(id EntityID) (Item, error) {
	e, ok := s.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("get %d: %w", id, ErrUnknownID)
	}
	return Item{ID: id, Entity: e}, nil
}

// Find returns the first item in iteration order for which pred is true.
func (s Store) Find(pred func(Item) bool) (Item, bool) {
	for _, id := range s.order {
		it := Item{ID: id, Entity: s.byID[id]}
		if pred(it) {
			return it, true
		}
	}
	return Item{}, false
}

// Filter returns every item for which pred is true, in iteration order.
func (s Store) Filter(pred func(Item) bool) []Item {
	var out []Item
	for _, id := range s.order {
		it := Item{ID: id, Entity: s.byID[id]}
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Items returns all items in iteration order.
func (s Store) Items() []Item {
	return s.Filter(func(Item) bool { return true })
}

// Add allocates the next id for e and returns the new store and that id.
func (s Store) Add(e Entity) (Store, EntityID) {
	next := s.clone()
	id := next.insert(e)
	return next, id
}

// Set replaces the entity stored under id, keeping its iteration position.
func (s Store) Set(id EntityID, e Entity) (Store, error) {
	if !s.Has(id) {
		return s, fmt.Errorf("set %d: %w", id, ErrUnknownID)
	}
	next := s.clone()
	next.byID[id] = e
	return next, nil
}

// Remove deletes the entity stored under id. The id is not reallocated.
func (s Store) Remove(id EntityID) (Store, error) {
	if !s.Has(id) {
		return s, fmt.Errorf("remove %d: %w", id, ErrUnknownID)
	}
	next := s.clone()
	delete(next.byID, id)
	next.order = slices.DeleteFunc(next.order, func(other EntityID) bool { return other == id })
	return next, nil
}

func (s *Store) insert(e Entity) EntityID {
	if s.byID == nil {
		s.byID = make(map[EntityID]Entity)
	}
	id := s.nextID
	s.nextID++
	s.byID[id] = e
	s.order = append(s.order, id)
	return id
}

func (s Store) clone() Store {
	return Store{
		nextID: s.nextID,
		order:  slices.Clone(s.order),
		byID:   maps.Clone(s.byID),
	}
}
