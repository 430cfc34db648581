package services

import (
	"context"

	"github.com/google/uuid"

	"tripdeck/internal/models/itinerary_models"
	"tripdeck/internal/repositories"
	mem "tripdeck/pkg/memcache"
	"tripdeck/pkg/utils"
)

// ItineraryServiceInterface is the itinerary engine. It is the sole source of
// truth for day ordering and activity membership; callers re-derive their
// view from GetItinerary after every mutation.
type ItineraryServiceInterface interface {
	GetItinerary(ctx context.Context, sessionID string) (*itinerary_models.Itinerary, error)
	AddDay(ctx context.Context, sessionID string) (itinerary_models.Day, error)
	RemoveDay(ctx context.Context, sessionID string, dayID string) error
	AddActivityFromCatalog(ctx context.Context, sessionID, attractionID, targetDayID string) (itinerary_models.Activity, error)
	RemoveActivity(ctx context.Context, sessionID, activityID string) error
	UpdateActivityTime(ctx context.Context, sessionID, activityID, newTime string) error
	ReorderWithinDay(ctx context.Context, sessionID, dayID string, orderedActivityIDs []string) error
	MoveActivityAcrossDays(ctx context.Context, sessionID, activityID, fromDayID, toDayID string, targetIndex int) error
}

type ItineraryService struct {
	store       mem.ItineraryStore
	catalogRepo repositories.CatalogRepository
}

func NewItineraryService(store mem.ItineraryStore, catalogRepo repositories.CatalogRepository) ItineraryServiceInterface {
	return &ItineraryService{
		store:       store,
		catalogRepo: catalogRepo,
	}
}

func (s *ItineraryService) GetItinerary(ctx context.Context, sessionID string) (*itinerary_models.Itinerary, error) {
	var out *itinerary_models.Itinerary
	err := s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		it.EnsureDefaultDays()
		out = it.Clone()
		return nil
	})
	return out, err
}

func (s *ItineraryService) AddDay(ctx context.Context, sessionID string) (itinerary_models.Day, error) {
	var day itinerary_models.Day
	err := s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		day = itinerary_models.NewDay(len(it.Days) + 1)
		it.Days = append(it.Days, day)
		return nil
	})
	return day, err
}

// RemoveDay discards the day and its activities, then renumbers the rest.
// The last remaining day cannot be removed.
func (s *ItineraryService) RemoveDay(ctx context.Context, sessionID string, dayID string) error {
	return s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		if it.DayByID(dayID) == nil {
			return nil
		}
		if len(it.Days) == 1 {
			return utils.ErrLastDay
		}

		kept := make([]itinerary_models.Day, 0, len(it.Days)-1)
		for _, d := range it.Days {
			if d.ID != dayID {
				kept = append(kept, d)
			}
		}
		it.Days = kept
		it.Renumber()
		return nil
	})
}

// AddActivityFromCatalog materializes a catalog attraction as a new activity
// at the end of the target day, defaulting to day 1. An empty itinerary is
// initialized with the default days first.
func (s *ItineraryService) AddActivityFromCatalog(ctx context.Context, sessionID, attractionID, targetDayID string) (itinerary_models.Activity, error) {
	item, ok := s.catalogRepo.AttractionByID(attractionID)
	if !ok {
		return itinerary_models.Activity{}, utils.ErrAttractionNotFound
	}

	var act itinerary_models.Activity
	err := s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		it.EnsureDefaultDays()

		day := &it.Days[0]
		if targetDayID != "" {
			day = it.DayByID(targetDayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
		}

		act = itinerary_models.Activity{
			ID:                 "activity-" + uuid.NewString(),
			Name:               item.Name,
			Description:        item.Description,
			Price:              item.Price,
			Time:               utils.RandomTimeSlot(),
			Type:               itinerary_models.ActivityTypeAttraction,
			SourceAttractionID: item.ID,
		}
		day.Activities = append(day.Activities, act)
		return nil
	})
	return act, err
}

// RemoveActivity deletes the activity wherever it lives. Unknown ids are a
// no-op; the UI may race its own removals with a pending drag.
func (s *ItineraryService) RemoveActivity(ctx context.Context, sessionID, activityID string) error {
	return s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		day, idx := it.OwnerOf(activityID)
		if day == nil {
			return nil
		}
		day.Activities = append(day.Activities[:idx], day.Activities[idx+1:]...)
		return nil
	})
}

func (s *ItineraryService) UpdateActivityTime(ctx context.Context, sessionID, activityID, newTime string) error {
	return s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		day, idx := it.OwnerOf(activityID)
		if day == nil {
			return nil
		}
		day.Activities[idx].Time = newTime
		return nil
	})
}

// ReorderWithinDay reassigns the day's activity order to match the reported
// id sequence. The input is authoritative for order only:
//   - ids the day does not own but another day does contradict containment
//     and reject the whole reorder;
//   - ids unknown to the entire itinerary are stale drag references and are
//     dropped;
//   - day activities missing from the input keep their prior relative order
//     at the tail, so a stale event cannot lose data.
func (s *ItineraryService) ReorderWithinDay(ctx context.Context, sessionID, dayID string, orderedActivityIDs []string) error {
	return s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		day := it.DayByID(dayID)
		if day == nil {
			return nil
		}

		current := make(map[string]int, len(day.Activities))
		for i, a := range day.Activities {
			current[a.ID] = i
		}

		seen := make(map[string]bool, len(orderedActivityIDs))
		reordered := make([]itinerary_models.Activity, 0, len(day.Activities))
		for _, id := range orderedActivityIDs {
			if seen[id] {
				return utils.ErrReorderMismatch
			}
			seen[id] = true

			idx, ok := current[id]
			if !ok {
				if owner, _ := it.OwnerOf(id); owner != nil {
					return utils.ErrReorderMismatch
				}
				continue
			}
			reordered = append(reordered, day.Activities[idx])
		}
		for _, a := range day.Activities {
			if !seen[a.ID] {
				reordered = append(reordered, a)
			}
		}

		day.Activities = reordered
		return nil
	})
}

// MoveActivityAcrossDays removes the activity from the source day and inserts
// it at targetIndex (clamped) in the destination day, atomically. Unknown
// days or a missing activity leave the itinerary untouched.
func (s *ItineraryService) MoveActivityAcrossDays(ctx context.Context, sessionID, activityID, fromDayID, toDayID string, targetIndex int) error {
	return s.store.Update(sessionID, func(it *itinerary_models.Itinerary) error {
		from := it.DayByID(fromDayID)
		to := it.DayByID(toDayID)
		if from == nil || to == nil {
			return nil
		}

		idx := -1
		for i, a := range from.Activities {
			if a.ID == activityID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil
		}

		act := from.Activities[idx]
		from.Activities = append(from.Activities[:idx], from.Activities[idx+1:]...)

		if targetIndex < 0 {
			targetIndex = 0
		}
		if targetIndex > len(to.Activities) {
			targetIndex = len(to.Activities)
		}
		rest := make([]itinerary_models.Activity, len(to.Activities[targetIndex:]))
		copy(rest, to.Activities[targetIndex:])
		to.Activities = append(append(to.Activities[:targetIndex], act), rest...)
		return nil
	})
}
