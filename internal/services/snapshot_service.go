package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"tripdeck/internal/models/itinerary_models"
	"tripdeck/internal/repositories"
	mem "tripdeck/pkg/memcache"
	"tripdeck/pkg/utils"
)

const (
	itineraryKeyPrefix   = "itinerary:"
	destinationKeyPrefix = "destination:"
)

// DestinationSummary is the small metadata record stored next to a saved
// itinerary. The engine never interprets it.
type DestinationSummary struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	SavedAt string `json:"saved_at"`
}

type SnapshotServiceInterface interface {
	// Save persists the session's itinerary and a destination summary. A
	// failed write leaves both the store and the in-memory state untouched.
	Save(ctx context.Context, sessionID, destinationName, destinationCountry string) error

	// Load reads the saved itinerary, replaces the session's in-memory state
	// with it, and returns it. Absent, unreadable, or unknown-version
	// snapshots load as (nil, nil): no saved state.
	Load(ctx context.Context, sessionID string) (*itinerary_models.Itinerary, error)
}

type SnapshotService struct {
	store mem.ItineraryStore
	repo  repositories.SnapshotRepository
}

func NewSnapshotService(store mem.ItineraryStore, repo repositories.SnapshotRepository) SnapshotServiceInterface {
	return &SnapshotService{
		store: store,
		repo:  repo,
	}
}

func (s *SnapshotService) Save(ctx context.Context, sessionID, destinationName, destinationCountry string) error {
	// A session can save before its first fetch; the saved itinerary must
	// still carry the default days rather than zero days.
	if err := s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		it.EnsureDefaultDays()
		return nil
	}); err != nil {
		return err
	}

	snapshot := s.store.Snapshot(sessionID)
	snapshot.Version = itinerary_models.SchemaVersion

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return utils.ErrStorage
	}
	if err := s.repo.Put(ctx, itineraryKeyPrefix+sessionID, payload); err != nil {
		return utils.ErrStorage
	}

	summary := DestinationSummary{
		Name:    destinationName,
		Country: destinationCountry,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
	}
	meta, err := json.Marshal(summary)
	if err != nil {
		return utils.ErrStorage
	}
	if err := s.repo.Put(ctx, destinationKeyPrefix+sessionID, meta); err != nil {
		return utils.ErrStorage
	}
	return nil
}

func (s *SnapshotService) Load(ctx context.Context, sessionID string) (*itinerary_models.Itinerary, error) {
	payload, err := s.repo.Get(ctx, itineraryKeyPrefix+sessionID)
	if errors.Is(err, utils.ErrSnapshotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var it itinerary_models.Itinerary
	if err := json.Unmarshal(payload, &it); err != nil {
		log.Printf("Discarding unreadable itinerary snapshot for session %s: %v", sessionID, err)
		return nil, nil
	}
	if it.Version != itinerary_models.SchemaVersion {
		log.Printf("Discarding itinerary snapshot with unknown version %d for session %s", it.Version, sessionID)
		return nil, nil
	}
	if it.Days == nil {
		it.Days = []itinerary_models.Day{}
	}

	s.store.Replace(sessionID, &it)
	return s.store.Snapshot(sessionID), nil
}
