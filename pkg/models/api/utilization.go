package api

type UtilizationProfile struct {
	AssetID        string  `json:"asset_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Status         string  `json:"status"`
	TotalLoans     int     `json:"total_loans"`
	RecentLoans90d int     `json:"recent_loans_90d"`
	DaysOnLoan     int     `json:"days_on_loan"`
	OccupancyPct   float64 `json:"occupancy_pct"`
	Tier           string  `json:"tier"`
	Recommendation string  `json:"recommendation,omitempty"`
}

type TierCounts struct {
	Alto  int `json:"alto"`
	Medio int `json:"medio"`
	Baixo int `json:"baixo"`
}

type UtilizationStats struct {
	Total            int        `json:"total"`
	WithLoans        int        `json:"with_loans"`
	NeverUsed        int        `json:"never_used"`
	MeanOccupancyPct float64    `json:"mean_occupancy_pct"`
	ByTier           TierCounts `json:"by_tier"`
}

type UtilizationResponse struct {
	Success       bool                 `json:"success"`
	MostRequested []UtilizationProfile `json:"most_requested"`
	Underused     []UtilizationProfile `json:"underused"`
	Stats         UtilizationStats     `json:"stats"`
	Message       string               `json:"message,omitempty"`
	Error         string               `json:"error,omitempty"`
}
