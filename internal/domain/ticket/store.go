package ticket

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Store is the ordered collection of every ticket issued in a session.
// Readers always receive copies; the store itself is the only owner of its tickets.
type Store struct {
	mu      sync.RWMutex
	tickets []*Ticket
	index   map[uuid.UUID]int
}

func NewStore() *Store {
	return &Store{index: make(map[uuid.UUID]int)}
}

func (s *Store) Append(t *Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[t.id]; exists {
		return ErrDuplicateID
	}
	s.index[t.id] = len(s.tickets)
	s.tickets = append(s.tickets, t.clone())
	return nil
}

// Update applies patch to the ticket with the given id and returns the updated copy.
func (s *Store) Update(id uuid.UUID, patch Patch) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.applyTo(s.tickets[i])
	return s.tickets[i].clone(), nil
}

func (s *Store) Get(id uuid.UUID) (*Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.tickets[i].clone(), nil
}

// All returns the tickets in insertion order.
func (s *Store) All() []*Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Ticket, len(s.tickets))
	for i, t := range s.tickets {
		out[i] = t.clone()
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = nil
	s.index = make(map[uuid.UUID]int)
}

// Replace swaps the whole collection, keeping the given order.
// The store is left untouched when tickets fails ValidateCollection.
func (s *Store) Replace(tickets []*Ticket) error {
	if err := ValidateCollection(tickets); err != nil {
		return err
	}
	index := make(map[uuid.UUID]int, len(tickets))
	copied := make([]*Ticket, len(tickets))
	for i, t := range tickets {
		index[t.id] = i
		copied[i] = t.clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = copied
	s.index = index
	return nil
}

func sortByCreatedAt(tickets []*Ticket) {
	slices.SortStableFunc(tickets, func(a, b *Ticket) int {
		return a.createdAt.Compare(b.createdAt)
	})
}
