package response_models

type ForecastDay struct {
	Date        string `json:"date"`
	TempC       int    `json:"temp_c"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type WeatherResponse struct {
	Destination string        `json:"destination"`
	Days        []ForecastDay `json:"days"`
}
