package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"tripdeck/internal/models/response_models"
	"tripdeck/pkg/utils"
)

type costTier struct {
	accommodation int64
	food          int64
	activities    int64
	transport     int64
}

// Daily costs per travel style, in INR.
var dailyCosts = map[string]costTier{
	"budget":   {accommodation: 4000, food: 2400, activities: 1600, transport: 800},
	"standard": {accommodation: 12000, food: 4800, activities: 3200, transport: 1600},
	"luxury":   {accommodation: 28000, food: 9600, activities: 8000, transport: 4000},
}

// Relative price levels for well-known cities; anywhere else is 1.0.
var costModifiers = map[string]float64{
	"paris":          1.25,
	"london":         1.3,
	"new york":       1.4,
	"tokyo":          1.2,
	"bangkok":        0.7,
	"bali":           0.65,
	"rome":           1.15,
	"sydney":         1.25,
	"barcelona":      1.1,
	"amsterdam":      1.2,
	"berlin":         1.05,
	"hong kong":      1.3,
	"singapore":      1.25,
	"dubai":          1.4,
	"istanbul":       0.85,
	"cape town":      0.9,
	"mexico city":    0.75,
	"rio de janeiro": 0.8,
	"moscow":         1.1,
	"mumbai":         0.6,
}

type CostServiceInterface interface {
	Estimate(ctx context.Context, destination, travelStyle string, durationDays int) (*response_models.CostEstimateResponse, error)
}

type CostService struct{}

func NewCostService() CostServiceInterface {
	return &CostService{}
}

// Estimate prices a stay from the style's daily tier scaled by duration and
// the destination's cost modifier. Flights are excluded.
func (s *CostService) Estimate(ctx context.Context, destination, travelStyle string, durationDays int) (*response_models.CostEstimateResponse, error) {
	if destination == "" || durationDays < 1 {
		return nil, utils.ErrInvalidInput
	}
	tier, ok := dailyCosts[travelStyle]
	if !ok {
		return nil, utils.ErrInvalidInput
	}

	modifier := 1.0
	city, _, _ := strings.Cut(destination, ",")
	if m, ok := costModifiers[strings.ToLower(strings.TrimSpace(city))]; ok {
		modifier = m
	}

	days := int64(durationDays)
	scale := func(daily int64) int64 {
		return int64(math.Round(float64(daily*days) * modifier))
	}

	subtotal := (tier.accommodation + tier.food + tier.activities + tier.transport) * days
	return &response_models.CostEstimateResponse{
		Total:    int64(math.Round(float64(subtotal) * modifier)),
		Currency: "INR",
		Breakdown: response_models.CostBreakdown{
			Accommodation: scale(tier.accommodation),
			Food:          scale(tier.food),
			Activities:    scale(tier.activities),
			Transport:     scale(tier.transport),
		},
		Note: fmt.Sprintf("Estimate doesn't include flights to/from %s.", destination),
	}, nil
}
