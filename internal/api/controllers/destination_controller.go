package controllers

import (
	"github.com/gin-gonic/gin"

	"tripdeck/internal/services"
	"tripdeck/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// SearchDestinations godoc
// @Summary Search destinations
// @Tags Destinations
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} catalog_models.Destination
// @Router /destinations/search [get]
func (d *DestinationController) SearchDestinations(c *gin.Context) {
	results, err := d.destinationService.SearchDestinations(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Destinations fetched successfully")
}
