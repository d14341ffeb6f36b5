package analytics

// Settings contains the configurable thresholds used by every analysis.
type Settings struct {
	// MinDataPoints is the minimum number of distinct months needed to forecast a category (default: 3)
	MinDataPoints int `ini:"min_data_points"`
	// ForecastPeriods is the number of future months projected by the trend forecaster (default: 3)
	ForecastPeriods int `ini:"forecast_periods"`
	// HistoryMonths is the number of trailing months reported with each forecast (default: 6)
	HistoryMonths int `ini:"history_months"`
	// HorizonDays is the forecast horizon reported to clients (default: 90)
	HorizonDays int `ini:"horizon_days"`

	// GrowthHighPct flags accelerated growth (default: 20)
	GrowthHighPct float64 `ini:"growth_high_pct"`
	// GrowthModeratePct flags moderate growth (default: 10)
	GrowthModeratePct float64 `ini:"growth_moderate_pct"`
	// UtilizationHighPct flags high utilization (default: 80)
	UtilizationHighPct float64 `ini:"utilization_high_pct"`
	// UtilizationElevatedPct flags elevated utilization (default: 60)
	UtilizationElevatedPct float64 `ini:"utilization_elevated_pct"`
	// StockSeverePct is the stock ratio under which priority is always high (default: 10)
	StockSeverePct float64 `ini:"stock_severe_pct"`
	// StockCriticalPct is the stock ratio under which buying is recommended (default: 20)
	StockCriticalPct float64 `ini:"stock_critical_pct"`
	// StockReducedPct is the stock ratio under which planning is recommended (default: 30)
	StockReducedPct float64 `ini:"stock_reduced_pct"`
	// TrendThresholdPct separates growing/decreasing trends from stable ones (default: 5)
	TrendThresholdPct float64 `ini:"trend_threshold_pct"`
	// UtilizationWindowDays is the trailing window used for the category utilization rate (default: 30)
	UtilizationWindowDays int `ini:"utilization_window_days"`

	// SeasonalHighFactor marks a month as high demand when count > factor x mean (default: 1.5)
	SeasonalHighFactor float64 `ini:"seasonal_high_factor"`
	// SeasonalLowFactor marks a month as low demand when 0 < count < factor x mean (default: 0.5)
	SeasonalLowFactor float64 `ini:"seasonal_low_factor"`

	// ValuePerUsageDay is the share of the acquisition value generated per day on loan (default: 0.003)
	ValuePerUsageDay float64 `ini:"value_per_usage_day"`
	// ROINeutralFloorPct is the lowest ROI still classified as neutral (default: -10)
	ROINeutralFloorPct float64 `ini:"roi_neutral_floor_pct"`
	// RankingSize is the length of top/bottom rankings (default: 10)
	RankingSize int `ini:"ranking_size"`

	// OccupancyHighPct is the occupancy for the "alto" tier (default: 60)
	OccupancyHighPct float64 `ini:"occupancy_high_pct"`
	// OccupancyMediumPct is the occupancy for the "medio" tier (default: 30)
	OccupancyMediumPct float64 `ini:"occupancy_medium_pct"`
	// OccupancyVeryLowPct separates very low usage inside the "baixo" tier (default: 10)
	OccupancyVeryLowPct float64 `ini:"occupancy_very_low_pct"`
	// OccupancyBaseDays caps the observed lifetime used for occupancy (default: 365)
	OccupancyBaseDays int `ini:"occupancy_base_days"`
	// RecentLoanDays is the window for recent loan counts (default: 90)
	RecentLoanDays int `ini:"recent_loan_days"`
}

// DefaultSettings returns the default analysis thresholds.
func DefaultSettings() Settings {
	return Settings{
		MinDataPoints:   3,
		ForecastPeriods: 3,
		HistoryMonths:   6,
		HorizonDays:     90,

		GrowthHighPct:          20,
		GrowthModeratePct:      10,
		UtilizationHighPct:     80,
		UtilizationElevatedPct: 60,
		StockSeverePct:         10,
		StockCriticalPct:       20,
		StockReducedPct:        30,
		TrendThresholdPct:      5,
		UtilizationWindowDays:  30,

		SeasonalHighFactor: 1.5,
		SeasonalLowFactor:  0.5,

		ValuePerUsageDay:   0.003,
		ROINeutralFloorPct: -10,
		RankingSize:        10,

		OccupancyHighPct:    60,
		OccupancyMediumPct:  30,
		OccupancyVeryLowPct: 10,
		OccupancyBaseDays:   365,
		RecentLoanDays:      90,
	}
}
