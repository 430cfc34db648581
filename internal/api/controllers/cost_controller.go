package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/services"
	"tripdeck/pkg/utils"
)

type CostController struct {
	costService services.CostServiceInterface
}

func NewCostController(costService services.CostServiceInterface) *CostController {
	return &CostController{
		costService: costService,
	}
}

// Estimate godoc
// @Summary Estimate trip costs
// @Tags Cost
// @Produce json
// @Param destination query string true "Destination"
// @Param style query string false "Travel style" default(standard)
// @Param duration query int false "Trip duration in days" default(7)
// @Success 200 {object} response_models.CostEstimateResponse
// @Router /cost/estimate [get]
func (ct *CostController) Estimate(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	style := c.DefaultQuery("style", "standard")

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "7"))
	if err != nil || duration < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Duration must be a positive number of days")
		return
	}

	estimate, err := ct.costService.Estimate(c.Request.Context(), destination, style, duration)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, estimate, "Cost estimate calculated")
}
