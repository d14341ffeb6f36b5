package adapters

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/equipment-insights/pkg/models/api"
	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

func MapForecastResponseToReport(r api.ForecastResponse) domain.Report {
	report := domain.Report{
		Title:       fmt.Sprintf("Demand forecast (%d day horizon)", r.HorizonDays),
		GeneratedAt: r.AnalysisTimestamp,
		Message:     responseMessage(r.Message, r.Error),
		Sections:    make([]domain.ReportSection, 0, len(r.Forecasts)),
	}

	for _, f := range r.Forecasts {
		projected := make([]string, 0, len(f.ProjectedNext3))
		for _, p := range f.ProjectedNext3 {
			projected = append(projected, strconv.FormatFloat(p, 'f', 1, 64))
		}

		section := domain.ReportSection{
			Title: f.Category,
			Summary: []domain.ReportSummary{
				{Key: "Recommendation", Value: fmt.Sprintf("%s (%s priority)", f.Recommendation.Action, f.Recommendation.Priority)},
				{Key: "Message", Value: f.Recommendation.Message},
				{Key: "Reasons", Value: strings.Join(f.Recommendation.Reasons, "; ")},
			},
			Details: []domain.ReportDetail{
				{Name: "Total units", Value: f.TotalQty, Unit: "units"},
				{Name: "In stock", Value: f.StockQty, Unit: "units"},
				{Name: "Loans this month", Value: f.CurrentMonthLoans, Unit: "loans"},
				{Name: "Mean monthly loans", Value: f.MeanMonthly, Unit: "loans", Description: "last 3 months"},
				{Name: "Projection", Value: strings.Join(projected, " / "), Unit: "loans", Description: "next 3 months"},
				{Name: "Growth rate", Value: f.GrowthRatePct, Unit: "%", Description: "projected vs recent mean"},
				{Name: "Utilization", Value: f.UtilizationPct, Unit: "%", Description: "units loaned in the last 30 days"},
				{Name: "Trend", Value: f.Trend},
				{Name: "Suggested quantity", Value: f.Recommendation.SuggestedQty, Unit: "units"},
			},
		}
		report.Sections = append(report.Sections, section)
	}
	return report
}

func MapSeasonalityResponseToReport(r api.SeasonalityResponse, generatedAt time.Time) domain.Report {
	section := domain.ReportSection{
		Title: "Monthly loan volume",
		Summary: []domain.ReportSummary{
			{Key: "Mean", Value: strconv.FormatFloat(r.Mean, 'f', 1, 64)},
			{Key: "Peak months", Value: strings.Join(r.PeakMonths, ", ")},
			{Key: "Trough months", Value: strings.Join(r.TroughMonths, ", ")},
			{Key: "Insights", Value: strings.Join(r.Insights, "; ")},
		},
		Details: make([]domain.ReportDetail, 0, len(r.Monthly)),
	}
	for _, m := range r.Monthly {
		detail := domain.ReportDetail{Name: m.Label, Value: m.Qty, Unit: "loans"}
		switch m.Qty {
		case r.Peak:
			detail.Description = "peak"
		case r.Trough:
			detail.Description = "trough"
		}
		section.Details = append(section.Details, detail)
	}

	report := domain.Report{
		Title:       "Seasonality",
		GeneratedAt: generatedAt,
		Message:     responseMessage(r.Message, r.Error),
	}
	if len(r.Monthly) > 0 {
		report.Sections = []domain.ReportSection{section}
	}
	return report
}

func MapFinancialResponseToReport(r api.FinancialResponse, generatedAt time.Time) domain.Report {
	report := domain.Report{
		Title:       "Fleet return on investment",
		GeneratedAt: generatedAt,
		Message:     responseMessage(r.Message, r.Error),
	}
	if r.Totals.AssetsEvaluated == 0 {
		return report
	}

	report.Sections = append(report.Sections, domain.ReportSection{
		Title: "Fleet totals",
		Details: []domain.ReportDetail{
			{Name: "Assets evaluated", Value: r.Totals.AssetsEvaluated, Unit: "assets"},
			{Name: "Acquisition value", Value: fmt.Sprintf("%.2f", r.Totals.AcquisitionValue), Unit: "currency"},
			{Name: "Residual value", Value: fmt.Sprintf("%.2f", r.Totals.ResidualValue), Unit: "currency"},
			{Name: "Maintenance cost", Value: fmt.Sprintf("%.2f", r.Totals.MaintenanceCost), Unit: "currency"},
			{Name: "Mean ROI", Value: r.MeanROIPct, Unit: "%"},
		},
	})
	report.Sections = append(report.Sections, roiSection("Best ROI", r.TopROI))
	if len(r.BottomROI) > 0 {
		report.Sections = append(report.Sections, roiSection("Worst ROI", r.BottomROI))
	}
	return report
}

func roiSection(title string, records []api.ROIRecord) domain.ReportSection {
	section := domain.ReportSection{
		Title:   title,
		Details: make([]domain.ReportDetail, 0, len(records)),
	}
	for _, rec := range records {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s (%s)", rec.Name, rec.Category),
			Value:       rec.ROIPct,
			Unit:        "%",
			Description: fmt.Sprintf("%s, %d usage days, %.1f years old", rec.Class, rec.UsageDays, rec.AgeYears),
		})
	}
	return section
}

func MapUtilizationResponseToReport(r api.UtilizationResponse, generatedAt time.Time) domain.Report {
	report := domain.Report{
		Title:       "Equipment utilization",
		GeneratedAt: generatedAt,
		Message:     responseMessage(r.Message, r.Error),
	}
	if r.Stats.Total == 0 {
		return report
	}

	report.Sections = append(report.Sections, domain.ReportSection{
		Title: "Statistics",
		Details: []domain.ReportDetail{
			{Name: "Assets", Value: r.Stats.Total, Unit: "assets"},
			{Name: "With loans", Value: r.Stats.WithLoans, Unit: "assets"},
			{Name: "Never used", Value: r.Stats.NeverUsed, Unit: "assets"},
			{Name: "Mean occupancy", Value: r.Stats.MeanOccupancyPct, Unit: "%"},
			{Name: "High usage", Value: r.Stats.ByTier.Alto, Unit: "assets"},
			{Name: "Medium usage", Value: r.Stats.ByTier.Medio, Unit: "assets"},
			{Name: "Low usage", Value: r.Stats.ByTier.Baixo, Unit: "assets"},
		},
	})
	report.Sections = append(report.Sections,
		utilizationSection("Most requested", r.MostRequested),
		utilizationSection("Underused", r.Underused),
	)
	return report
}

func utilizationSection(title string, profiles []api.UtilizationProfile) domain.ReportSection {
	section := domain.ReportSection{
		Title:   title,
		Details: make([]domain.ReportDetail, 0, len(profiles)),
	}
	for _, p := range profiles {
		desc := fmt.Sprintf("%d loans, %d in last 90 days", p.TotalLoans, p.RecentLoans90d)
		if p.Recommendation != "" {
			desc = p.Recommendation
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s (%s)", p.Name, p.Category),
			Value:       p.OccupancyPct,
			Unit:        "%",
			Description: desc,
		})
	}
	return section
}

func MapDashboardResponseToReports(r api.DashboardResponse) []domain.Report {
	return []domain.Report{
		MapForecastResponseToReport(r.Forecast),
		MapSeasonalityResponseToReport(r.Seasonality, r.AnalysisTimestamp),
		MapFinancialResponseToReport(r.Financial, r.AnalysisTimestamp),
		MapUtilizationResponseToReport(r.Utilization, r.AnalysisTimestamp),
	}
}

func responseMessage(message, errMsg string) string {
	if errMsg != "" {
		return "error: " + errMsg
	}
	return message
}
