package controllers_fx

import (
	"go.uber.org/fx"

	"tripdeck/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewCostController))
