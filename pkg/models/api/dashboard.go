package api

import "time"

// DashboardResponse bundles every analysis computed over the same snapshot.
type DashboardResponse struct {
	Success           bool                `json:"success"`
	Forecast          ForecastResponse    `json:"forecast"`
	Seasonality       SeasonalityResponse `json:"seasonality"`
	Financial         FinancialResponse   `json:"financial"`
	Utilization       UtilizationResponse `json:"utilization"`
	AnalysisTimestamp time.Time           `json:"analysis_timestamp"`
}

// ErrorResponse is written when a request cannot be served at all.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
