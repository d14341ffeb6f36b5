package adapters

import (
	"github.com/de-tools/equipment-insights/pkg/models/api"
	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// round keeps the given number of decimal places for display.
func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func MapCategoryForecastDomainToApi(f domain.CategoryForecast) api.CategoryForecast {
	projected := make([]float64, 0, len(f.Forecast.Projected))
	for _, p := range f.Forecast.Projected {
		projected = append(projected, round(p, 1))
	}

	history := make([]api.MonthQty, 0, len(f.Forecast.History))
	for _, m := range f.Forecast.History {
		history = append(history, api.MonthQty{Month: m.MonthKey, Qty: m.Count})
	}

	reasons := make([]string, len(f.Recommendation.Reasons))
	copy(reasons, f.Recommendation.Reasons)

	return api.CategoryForecast{
		Category:          f.Forecast.Category,
		TotalQty:          f.TotalQty,
		StockQty:          f.StockQty,
		CurrentMonthLoans: f.Forecast.CurrentMonthCount,
		MeanMonthly:       round(f.Forecast.MeanRecent3, 1),
		ProjectedNext3:    projected,
		GrowthRatePct:     round(f.Forecast.GrowthRatePct, 1),
		UtilizationPct:    round(f.UtilizationPct, 1),
		Trend:             string(f.Trend),
		Recommendation: api.Recommendation{
			Action:       f.Recommendation.Action.String(),
			Priority:     f.Recommendation.Priority.String(),
			SuggestedQty: f.Recommendation.SuggestedQty,
			Message:      f.Recommendation.Message,
			Reasons:      reasons,
		},
		Last6Months: history,
	}
}

func MapCategoryForecastsDomainToApi(forecasts []domain.CategoryForecast) []api.CategoryForecast {
	out := make([]api.CategoryForecast, 0, len(forecasts))
	for _, f := range forecasts {
		out = append(out, MapCategoryForecastDomainToApi(f))
	}
	return out
}

func MapSeasonalProfileDomainToApi(p domain.SeasonalProfile) api.SeasonalityResponse {
	monthly := make([]api.SeasonalMonth, 0, len(p.Months))
	for _, m := range p.Months {
		monthly = append(monthly, api.SeasonalMonth{Month: m.Month, Label: m.Label, Qty: m.Count})
	}
	return api.SeasonalityResponse{
		Success:      true,
		Monthly:      monthly,
		Mean:         round(p.Mean, 1),
		Peak:         p.Peak,
		Trough:       p.Trough,
		PeakMonths:   nonNil(p.PeakMonths),
		TroughMonths: nonNil(p.TroughMonths),
		Insights:     nonNil(p.Insights),
	}
}

func MapROIRecordDomainToApi(r domain.ROIRecord) api.ROIRecord {
	return api.ROIRecord{
		AssetID:          r.AssetID,
		Name:             r.Name,
		Category:         r.Category,
		AcquisitionValue: round(r.AcquisitionValue, 2),
		ResidualValue:    round(r.ResidualValue, 2),
		UsageDays:        r.UsageDays,
		MaintenanceCost:  round(r.MaintenanceCost, 2),
		ROIPct:           round(r.ROIPct, 1),
		AgeYears:         round(r.AgeYears, 1),
		Class:            string(r.Class),
	}
}

func MapFinancialReportDomainToApi(r domain.FinancialReport) api.FinancialResponse {
	return api.FinancialResponse{
		Success:    true,
		TopROI:     mapROIRecords(r.Top),
		BottomROI:  mapROIRecords(r.Bottom),
		MeanROIPct: round(r.MeanROIPct, 1),
		Totals: api.FleetTotals{
			AssetsEvaluated:  r.AssetsEvaluated,
			AcquisitionValue: r.TotalAcquisitionValue,
			ResidualValue:    r.TotalResidualValue,
			MaintenanceCost:  r.TotalMaintenanceCost,
		},
	}
}

func mapROIRecords(records []domain.ROIRecord) []api.ROIRecord {
	out := make([]api.ROIRecord, 0, len(records))
	for _, r := range records {
		out = append(out, MapROIRecordDomainToApi(r))
	}
	return out
}

func MapUtilizationProfileDomainToApi(p domain.UtilizationProfile) api.UtilizationProfile {
	return api.UtilizationProfile{
		AssetID:        p.AssetID,
		Name:           p.Name,
		Category:       p.Category,
		Status:         string(p.Status),
		TotalLoans:     p.TotalLoans,
		RecentLoans90d: p.RecentLoans90d,
		DaysOnLoan:     p.DaysOnLoan,
		OccupancyPct:   round(p.OccupancyPct, 1),
		Tier:           string(p.Tier),
		Recommendation: p.Recommendation,
	}
}

func MapUtilizationReportDomainToApi(r domain.UtilizationReport) api.UtilizationResponse {
	return api.UtilizationResponse{
		Success:       true,
		MostRequested: mapUtilizationProfiles(r.MostRequested),
		Underused:     mapUtilizationProfiles(r.Underused),
		Stats: api.UtilizationStats{
			Total:            r.Stats.Total,
			WithLoans:        r.Stats.WithLoans,
			NeverUsed:        r.Stats.NeverUsed,
			MeanOccupancyPct: round(r.Stats.MeanOccupancyPct, 1),
			ByTier: api.TierCounts{
				Alto:  r.Stats.ByTier[domain.TierHigh],
				Medio: r.Stats.ByTier[domain.TierMedium],
				Baixo: r.Stats.ByTier[domain.TierLow],
			},
		},
	}
}

func mapUtilizationProfiles(profiles []domain.UtilizationProfile) []api.UtilizationProfile {
	out := make([]api.UtilizationProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, MapUtilizationProfileDomainToApi(p))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
