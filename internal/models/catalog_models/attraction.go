package catalog_models

// Attraction is a read-only catalog entry; the itinerary engine copies the
// fields it needs when materializing an activity.
type Attraction struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Price       string  `json:"price"`
}

type Destination struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
