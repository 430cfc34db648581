package destination_fx

import (
	"go.uber.org/fx"

	"tripdeck/internal/repositories"
	"tripdeck/internal/services"
)

var Module = fx.Provide(provideDestinationService)

func provideDestinationService(repo repositories.CatalogRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(repo)
}
