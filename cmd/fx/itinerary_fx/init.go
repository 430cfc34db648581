package itinerary_fx

import (
	"go.uber.org/fx"

	"tripdeck/internal/repositories"
	"tripdeck/internal/services"
	mem "tripdeck/pkg/memcache"
)

var Module = fx.Provide(
	provideItineraryService, provideDragService)

func provideItineraryService(store mem.ItineraryStore, catalogRepo repositories.CatalogRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(store, catalogRepo)
}

func provideDragService(itineraryService services.ItineraryServiceInterface) services.DragServiceInterface {
	return services.NewDragService(itineraryService)
}
