package catalog_fx

import (
	"go.uber.org/fx"

	"tripdeck/internal/repositories"
	"tripdeck/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService)

func provideCatalogRepo() repositories.CatalogRepository {
	return repositories.NewCatalogRepository()
}

func provideCatalogService(repo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(repo)
}
