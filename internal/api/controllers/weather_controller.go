package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/services"
	"tripdeck/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetForecast godoc
// @Summary Get a five-day forecast for a destination
// @Tags Weather
// @Produce json
// @Param destination path string true "Destination"
// @Success 200 {object} response_models.WeatherResponse
// @Router /weather/{destination} [get]
func (w *WeatherController) GetForecast(c *gin.Context) {
	destination := c.Param("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	forecast, err := w.weatherService.GetForecast(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, forecast, "Forecast fetched successfully")
}
