package response_models

type CostBreakdown struct {
	Accommodation int64 `json:"accommodation"`
	Food          int64 `json:"food"`
	Activities    int64 `json:"activities"`
	Transport     int64 `json:"transport"`
}

type CostEstimateResponse struct {
	Total     int64         `json:"total"`
	Currency  string        `json:"currency"`
	Breakdown CostBreakdown `json:"breakdown"`
	Note      string        `json:"note"`
}
