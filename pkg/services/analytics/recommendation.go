package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

// RecommendationInput holds the per-category signals evaluated by Recommend.
type RecommendationInput struct {
	GrowthRatePct  float64
	UtilizationPct float64
	StockCount     int
	TotalCount     int
	// ForecastDemand is the mean projected demand, floored at zero.
	ForecastDemand float64
}

// recommendation accumulates rule outcomes. Priority and action only ever move up.
type recommendation struct {
	priority domain.Priority
	action   domain.Action
	qty      int
	reasons  []string
}

func (r *recommendation) raise(p domain.Priority, a domain.Action) {
	if p > r.priority {
		r.priority = p
	}
	if a > r.action {
		r.action = a
	}
}

func (r *recommendation) atLeast(qty int) {
	if qty > r.qty {
		r.qty = qty
	}
}

func (r *recommendation) reason(format string, args ...any) {
	r.reasons = append(r.reasons, fmt.Sprintf(format, args...))
}

// Recommend evaluates the restocking rules in their fixed order:
// growth, utilization, stock ratio, forecast demand vs stock.
func Recommend(in RecommendationInput, settings Settings) domain.Recommendation {
	var rec recommendation
	total := float64(in.TotalCount)

	switch {
	case in.GrowthRatePct > settings.GrowthHighPct:
		rec.raise(domain.PriorityHigh, domain.ActionBuy)
		rec.atLeast(max(2, roundInt(total*0.3)))
		rec.reason("accelerated growth of %.0f%%", in.GrowthRatePct)
	case in.GrowthRatePct > settings.GrowthModeratePct:
		rec.raise(domain.PriorityMedium, domain.ActionPlan)
		rec.atLeast(max(1, roundInt(total*0.2)))
		rec.reason("moderate growth of %.0f%%", in.GrowthRatePct)
	}

	switch {
	case in.UtilizationPct > settings.UtilizationHighPct:
		rec.raise(domain.PriorityHigh, domain.ActionBuy)
		rec.atLeast(roundInt(total * 0.25))
		rec.reason("high utilization (%.0f%%)", in.UtilizationPct)
	case in.UtilizationPct > settings.UtilizationElevatedPct:
		rec.raise(domain.PriorityMedium, domain.ActionPlan)
		rec.reason("elevated utilization (%.0f%%)", in.UtilizationPct)
	}

	stockRatio := ratioPct(float64(in.StockCount), total)
	switch {
	case stockRatio < settings.StockCriticalPct:
		priority := domain.PriorityMedium
		if stockRatio < settings.StockSeverePct {
			priority = domain.PriorityHigh
		}
		rec.raise(priority, domain.ActionBuy)
		rec.atLeast(max(2, roundInt(total*0.3)))
		rec.reason("critical stock (%.0f%% available)", stockRatio)
	case stockRatio < settings.StockReducedPct:
		rec.raise(domain.PriorityMedium, domain.ActionPlan)
		rec.reason("reduced stock (%.0f%% available)", stockRatio)
	}

	stock := float64(in.StockCount)
	if in.ForecastDemand > stock {
		rec.raise(domain.PriorityMedium, domain.ActionPlan)
		rec.atLeast(int(math.Ceil(in.ForecastDemand-stock)) + 1)
		rec.reason("forecast demand (%.0f) exceeds stock", in.ForecastDemand)
	}

	if len(rec.reasons) == 0 {
		rec.reason("stock adequate for current demand")
	}

	return domain.Recommendation{
		Action:       rec.action,
		Priority:     rec.priority,
		SuggestedQty: rec.qty,
		Message:      actionMessage(rec.action, rec.qty),
		Reasons:      rec.reasons,
	}
}

func actionMessage(action domain.Action, qty int) string {
	switch action {
	case domain.ActionBuy:
		return fmt.Sprintf("Buy %d unit(s) immediately", qty)
	case domain.ActionPlan:
		return fmt.Sprintf("Plan the purchase of %d unit(s) for next quarter", qty)
	default:
		return "Keep monitoring trends"
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// BuildForecasts runs aggregation, trend forecasting and recommendations for every
// forecastable category. Results are ordered by growth rate, highest first; ties keep
// category name order.
func BuildForecasts(snap Snapshot, settings Settings) []domain.CategoryForecast {
	series := AggregateMonthly(snap.Loans)

	total := make(map[string]int)
	stock := make(map[string]int)
	for _, a := range snap.Assets {
		total[a.Category]++
		if a.Status == domain.AssetStatusInStock {
			stock[a.Category]++
		}
	}

	windowStart := snap.TakenAt.AddDate(0, 0, -settings.UtilizationWindowDays)
	recent := make(map[string]int)
	for _, l := range snap.Loans {
		if l.Category == "" || l.LoanedAt.IsZero() {
			continue
		}
		if !l.LoanedAt.Before(windowStart) {
			recent[l.Category]++
		}
	}

	forecasts := make([]domain.CategoryForecast, 0, len(series))
	for _, category := range sortedCategories(series) {
		result, ok := ForecastSeries(category, series[category], settings)
		if !ok {
			continue
		}

		utilization := ratioPct(float64(recent[category]), float64(total[category]))
		rec := Recommend(RecommendationInput{
			GrowthRatePct:  result.GrowthRatePct,
			UtilizationPct: utilization,
			StockCount:     stock[category],
			TotalCount:     total[category],
			ForecastDemand: math.Max(mean(result.Projected), 0),
		}, settings)

		forecasts = append(forecasts, domain.CategoryForecast{
			Forecast:       result,
			TotalQty:       total[category],
			StockQty:       stock[category],
			UtilizationPct: utilization,
			Trend:          trendOf(result.GrowthRatePct, settings),
			Recommendation: rec,
		})
	}

	sort.SliceStable(forecasts, func(i, j int) bool {
		return forecasts[i].Forecast.GrowthRatePct > forecasts[j].Forecast.GrowthRatePct
	})
	return forecasts
}
