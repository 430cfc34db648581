package weather_fx

import (
	"go.uber.org/fx"

	"tripdeck/internal/services"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewWeatherService()
}
