package request_models

type AddActivityRequest struct {
	AttractionID string `json:"attraction_id"`
	// DayID is optional; empty means the first day.
	DayID string `json:"day_id"`
}

type UpdateActivityTimeRequest struct {
	Time string `json:"time"`
}

type ReorderRequest struct {
	DayID       string   `json:"day_id"`
	ActivityIDs []string `json:"activity_ids"`
}

type MoveActivityRequest struct {
	ActivityID  string `json:"activity_id"`
	FromDayID   string `json:"from_day_id"`
	ToDayID     string `json:"to_day_id"`
	TargetIndex int    `json:"target_index"`
}

// DropEventRequest is what the UI reports after a completed drag-and-drop:
// the full post-drop order of the destination container for same-day drags,
// the displaced item plus insertion index for cross-day drags.
type DropEventRequest struct {
	SourceDayID string   `json:"source_day_id"`
	DestDayID   string   `json:"dest_day_id"`
	ActivityID  string   `json:"activity_id"`
	NewIndex    int      `json:"new_index"`
	DestOrder   []string `json:"dest_order"`
}

type SaveItineraryRequest struct {
	DestinationName    string `json:"destination_name"`
	DestinationCountry string `json:"destination_country"`
}
