package analytics

import (
	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

// ForecastSeries fits a linear trend over a category's monthly counts and projects
// settings.ForecastPeriods future months. It returns false when the series is too short.
func ForecastSeries(category string, series []domain.MonthlyCount, settings Settings) (domain.ForecastResult, bool) {
	n := len(series)
	if n == 0 || n < settings.MinDataPoints {
		return domain.ForecastResult{}, false
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, m := range series {
		xs[i] = float64(i)
		ys[i] = float64(m.Count)
	}
	slope, intercept := linearRegression(xs, ys)

	projected := make([]float64, settings.ForecastPeriods)
	for i := range projected {
		projected[i] = slope*float64(n+i) + intercept
	}

	recent := ys
	if n > 3 {
		recent = ys[n-3:]
	}
	meanRecent := mean(recent)

	historyStart := 0
	if settings.HistoryMonths > 0 && n > settings.HistoryMonths {
		historyStart = n - settings.HistoryMonths
	}
	history := make([]domain.MonthlyCount, n-historyStart)
	copy(history, series[historyStart:])

	return domain.ForecastResult{
		Category:          category,
		History:           history,
		Projected:         projected,
		CurrentMonthCount: series[n-1].Count,
		MeanRecent3:       meanRecent,
		GrowthRatePct:     growthRate(mean(projected), meanRecent),
	}, true
}

// growthRate is the percentage change from the recent mean to the projected mean.
func growthRate(projectedMean, recentMean float64) float64 {
	if recentMean == 0 {
		return 0
	}
	return (projectedMean - recentMean) / recentMean * 100
}

// trendOf labels a growth rate as growing, stable or decreasing.
func trendOf(growthPct float64, settings Settings) domain.Trend {
	switch {
	case growthPct > settings.TrendThresholdPct:
		return domain.TrendGrowing
	case growthPct < -settings.TrendThresholdPct:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}
