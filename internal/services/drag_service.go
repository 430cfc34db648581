package services

import (
	"context"

	"tripdeck/pkg/utils"
)

// DropEvent is the abstract result of one completed drag-and-drop, however
// the UI renders it: which container the item left, which it landed in, and
// where.
type DropEvent struct {
	SourceDayID string
	DestDayID   string
	ActivityID  string
	// NewIndex is the item's index in the destination container after the
	// drop; used for cross-day moves.
	NewIndex int
	// DestOrder is the complete id sequence of the destination container
	// after the drop; used for same-day reorders.
	DestOrder []string
}

type DragServiceInterface interface {
	ReconcileDrop(ctx context.Context, sessionID string, event DropEvent) error
}

type DragService struct {
	itineraryService ItineraryServiceInterface
}

func NewDragService(itineraryService ItineraryServiceInterface) DragServiceInterface {
	return &DragService{
		itineraryService: itineraryService,
	}
}

// ReconcileDrop translates a drop into engine calls: a same-day drop becomes
// a full reorder of that day, a cross-day drop becomes a single move. The
// caller reports drops one at a time, after the UI has settled.
func (d *DragService) ReconcileDrop(ctx context.Context, sessionID string, event DropEvent) error {
	if event.SourceDayID == "" || event.DestDayID == "" {
		return utils.ErrInvalidInput
	}

	if event.SourceDayID == event.DestDayID {
		return d.itineraryService.ReorderWithinDay(ctx, sessionID, event.DestDayID, event.DestOrder)
	}

	if event.ActivityID == "" {
		return utils.ErrInvalidInput
	}
	return d.itineraryService.MoveActivityAcrossDays(ctx, sessionID, event.ActivityID, event.SourceDayID, event.DestDayID, event.NewIndex)
}
