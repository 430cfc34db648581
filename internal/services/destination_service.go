package services

import (
	"context"
	"strings"

	"tripdeck/internal/models/catalog_models"
	"tripdeck/internal/repositories"
)

type DestinationServiceInterface interface {
	SearchDestinations(ctx context.Context, query string) ([]catalog_models.Destination, error)
}

type DestinationService struct {
	catalogRepo repositories.CatalogRepository
}

func NewDestinationService(catalogRepo repositories.CatalogRepository) DestinationServiceInterface {
	return &DestinationService{
		catalogRepo: catalogRepo,
	}
}

// SearchDestinations matches the query as a case-insensitive substring of
// the formatted "City, Country" label. An empty query returns no results.
func (s *DestinationService) SearchDestinations(ctx context.Context, query string) ([]catalog_models.Destination, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []catalog_models.Destination{}, nil
	}

	out := make([]catalog_models.Destination, 0)
	for _, d := range s.catalogRepo.Destinations() {
		formatted := strings.ToLower(d.Name + ", " + d.Country)
		if strings.Contains(formatted, query) {
			out = append(out, d)
		}
	}
	return out, nil
}
