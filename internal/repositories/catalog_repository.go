package repositories

import (
	"strings"

	"tripdeck/internal/models/catalog_models"
)

// CatalogRepository serves the attraction/destination sample catalog. The
// data is compiled in; there is no live places or geocoding integration.
type CatalogRepository interface {
	AttractionsByDestination(destination string) []catalog_models.Attraction
	AttractionByID(id string) (catalog_models.Attraction, bool)
	TipsByDestination(destination string) []string
	Destinations() []catalog_models.Destination
}

type catalogRepository struct {
	attractions  map[string][]catalog_models.Attraction
	byID         map[string]catalog_models.Attraction
	tips         map[string][]string
	destinations []catalog_models.Destination
}

func NewCatalogRepository() CatalogRepository {
	r := &catalogRepository{
		attractions:  sampleAttractions,
		byID:         make(map[string]catalog_models.Attraction),
		tips:         sampleTravelTips,
		destinations: sampleDestinations,
	}
	for _, list := range r.attractions {
		for _, a := range list {
			r.byID[a.ID] = a
		}
	}
	return r
}

func (r *catalogRepository) AttractionsByDestination(destination string) []catalog_models.Attraction {
	if list, ok := r.attractions[cityKey(destination)]; ok {
		return list
	}
	// cities outside the sample set fall back to the Paris list
	return r.attractions["paris"]
}

func (r *catalogRepository) AttractionByID(id string) (catalog_models.Attraction, bool) {
	a, ok := r.byID[id]
	return a, ok
}

func (r *catalogRepository) TipsByDestination(destination string) []string {
	if tips, ok := r.tips[cityKey(destination)]; ok {
		return tips
	}
	return r.tips["paris"]
}

func (r *catalogRepository) Destinations() []catalog_models.Destination {
	return r.destinations
}

// cityKey extracts the city from a formatted destination, so "Paris, France"
// and "paris" hit the same entry.
func cityKey(destination string) string {
	city, _, _ := strings.Cut(destination, ",")
	return strings.ToLower(strings.TrimSpace(city))
}
