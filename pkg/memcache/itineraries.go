// pkg/mem/itineraries.go
package mem

import (
	"sync"
	"time"

	"tripdeck/internal/models/itinerary_models"
)

type ItineraryStore interface {
	// Update runs fn against the session's itinerary under the store lock.
	// Mutations run to completion one at a time, so each drop event is
	// reconciled before the next can touch the same state.
	Update(sessionID string, fn func(it *itinerary_models.Itinerary) error) error

	// Snapshot returns a deep copy safe to read without the lock.
	Snapshot(sessionID string) *itinerary_models.Itinerary

	// Replace swaps the session's in-memory state wholesale (the load path).
	Replace(sessionID string, it *itinerary_models.Itinerary)
}

type entry struct {
	itinerary *itinerary_models.Itinerary
	expiresAt time.Time
}

type Itineraries struct {
	mu   sync.Mutex
	data map[string]*entry
	ttl  time.Duration
}

func NewItineraries(ttl time.Duration) *Itineraries {
	return &Itineraries{
		data: make(map[string]*entry),
		ttl:  ttl,
	}
}

func (s *Itineraries) Update(sessionID string, fn func(it *itinerary_models.Itinerary) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.live(sessionID).itinerary)
}

func (s *Itineraries) Snapshot(sessionID string) *itinerary_models.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live(sessionID).itinerary.Clone()
}

func (s *Itineraries) Replace(sessionID string, it *itinerary_models.Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live(sessionID).itinerary = it
}

// live returns the session entry, resetting expired ones and bumping the TTL.
func (s *Itineraries) live(sessionID string) *entry {
	now := time.Now()
	e, ok := s.data[sessionID]
	if !ok || now.After(e.expiresAt) {
		e = &entry{itinerary: itinerary_models.NewItinerary()}
		s.data[sessionID] = e
	}
	e.expiresAt = now.Add(s.ttl)
	return e
}
