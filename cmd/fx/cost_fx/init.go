package cost_fx

import (
	"go.uber.org/fx"

	"tripdeck/internal/services"
)

var Module = fx.Provide(provideCostService)

func provideCostService() services.CostServiceInterface {
	return services.NewCostService()
}
