package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/services"
	"tripdeck/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetAttractions godoc
// @Summary Get attractions for a destination
// @Tags Catalog
// @Produce json
// @Param destination query string true "Destination, e.g. Paris, France"
// @Success 200 {array} catalog_models.Attraction
// @Router /attractions [get]
func (ct *CatalogController) GetAttractions(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	attractions, err := ct.catalogService.GetAttractionsByDestination(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

// GetTravelTips godoc
// @Summary Get travel tips for a destination
// @Tags Catalog
// @Produce json
// @Param destination query string true "Destination"
// @Router /attractions/tips [get]
func (ct *CatalogController) GetTravelTips(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	tips, err := ct.catalogService.GetTravelTips(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tips, "Travel tips fetched successfully")
}
