package services

import (
	"context"

	"tripdeck/internal/models/catalog_models"
	"tripdeck/internal/repositories"
	"tripdeck/pkg/utils"
)

type CatalogServiceInterface interface {
	GetAttractionsByDestination(ctx context.Context, destination string) ([]catalog_models.Attraction, error)
	GetTravelTips(ctx context.Context, destination string) ([]string, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *CatalogService) GetAttractionsByDestination(ctx context.Context, destination string) ([]catalog_models.Attraction, error) {
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}
	return s.catalogRepo.AttractionsByDestination(destination), nil
}

func (s *CatalogService) GetTravelTips(ctx context.Context, destination string) ([]string, error) {
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}
	return s.catalogRepo.TipsByDestination(destination), nil
}
