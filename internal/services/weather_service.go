package services

import (
	"context"
	"math/rand"
	"time"

	"tripdeck/internal/models/response_models"
	"tripdeck/pkg/utils"
)

// Sample forecast conditions, keyed by the icon codes the UI maps to icons.
var forecastConditions = []struct {
	icon        string
	description string
}{
	{"01d", "Sunny"},
	{"02d", "Partly cloudy"},
	{"03d", "Cloudy"},
	{"04d", "Overcast"},
	{"10d", "Rain"},
}

type WeatherServiceInterface interface {
	GetForecast(ctx context.Context, destination string) (*response_models.WeatherResponse, error)
}

type WeatherService struct{}

func NewWeatherService() WeatherServiceInterface {
	return &WeatherService{}
}

// GetForecast generates a five-day sample forecast. There is no live weather
// integration; temperatures jitter around a per-request base like the demo
// data the UI was built against.
func (s *WeatherService) GetForecast(ctx context.Context, destination string) (*response_models.WeatherResponse, error) {
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}

	base := 20 + rand.Float64()*10
	now := time.Now()

	days := make([]response_models.ForecastDay, 0, 5)
	for i := 0; i < 5; i++ {
		cond := forecastConditions[rand.Intn(len(forecastConditions))]
		days = append(days, response_models.ForecastDay{
			Date:        now.AddDate(0, 0, i).Format("2006-01-02"),
			TempC:       int(base + rand.Float64()*6 - 3),
			Icon:        cond.icon,
			Description: cond.description,
		})
	}

	return &response_models.WeatherResponse{
		Destination: destination,
		Days:        days,
	}, nil
}
