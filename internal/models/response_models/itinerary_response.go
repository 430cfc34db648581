package response_models

import (
	"tripdeck/internal/models/itinerary_models"
)

type ActivityResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	Time               string `json:"time"`
	Type               string `json:"type"`
	SourceAttractionID string `json:"source_attraction_id"`
}

type DayResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	ActivityCount int                `json:"activity_count"`
	Activities    []ActivityResponse `json:"activities"`
}

type ItineraryResponse struct {
	Days []DayResponse `json:"days"`
}

func BuildItineraryResponse(it *itinerary_models.Itinerary) *ItineraryResponse {
	out := &ItineraryResponse{Days: make([]DayResponse, 0, len(it.Days))}
	for _, day := range it.Days {
		dr := DayResponse{
			ID:            day.ID,
			Title:         day.Title,
			ActivityCount: len(day.Activities),
			Activities:    make([]ActivityResponse, 0, len(day.Activities)),
		}
		for _, act := range day.Activities {
			dr.Activities = append(dr.Activities, ActivityResponse{
				ID:                 act.ID,
				Name:               act.Name,
				Description:        act.Description,
				Price:              act.Price,
				Time:               act.Time,
				Type:               act.Type,
				SourceAttractionID: act.SourceAttractionID,
			})
		}
		out.Days = append(out.Days, dr)
	}
	return out
}
