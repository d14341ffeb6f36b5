package api

type SeasonalMonth struct {
	Month int    `json:"month"`
	Label string `json:"label"`
	Qty   int    `json:"qty"`
}

type SeasonalityResponse struct {
	Success      bool            `json:"success"`
	Monthly      []SeasonalMonth `json:"monthly"`
	Mean         float64         `json:"mean"`
	Peak         int             `json:"peak"`
	Trough       int             `json:"trough"`
	PeakMonths   []string        `json:"peak_months"`
	TroughMonths []string        `json:"trough_months"`
	Insights     []string        `json:"insights"`
	Message      string          `json:"message,omitempty"`
	Error        string          `json:"error,omitempty"`
}
