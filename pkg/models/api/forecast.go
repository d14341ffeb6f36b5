package api

import "time"

type MonthQty struct {
	Month string `json:"month"`
	Qty   int    `json:"qty"`
}

type Recommendation struct {
	Action       string   `json:"action"`
	Priority     string   `json:"priority"`
	SuggestedQty int      `json:"suggested_qty"`
	Message      string   `json:"message"`
	Reasons      []string `json:"reasons"`
}

type CategoryForecast struct {
	Category          string         `json:"category"`
	TotalQty          int            `json:"total_qty"`
	StockQty          int            `json:"stock_qty"`
	CurrentMonthLoans int            `json:"current_month_loans"`
	MeanMonthly       float64        `json:"mean_monthly"`
	ProjectedNext3    []float64      `json:"projected_next_3"`
	GrowthRatePct     float64        `json:"growth_rate_pct"`
	UtilizationPct    float64        `json:"utilization_pct"`
	Trend             string         `json:"trend"`
	Recommendation    Recommendation `json:"recommendation"`
	Last6Months       []MonthQty     `json:"last_6_months"`
}

type ForecastResponse struct {
	Success           bool               `json:"success"`
	Forecasts         []CategoryForecast `json:"forecasts"`
	HorizonDays       int                `json:"horizon_days"`
	AnalysisTimestamp time.Time          `json:"analysis_timestamp"`
	Message           string             `json:"message,omitempty"`
	Error             string             `json:"error,omitempty"`
}
