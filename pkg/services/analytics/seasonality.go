package analytics

import (
	"fmt"
	"time"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

const evenDemandInsight = "demand evenly distributed across the year"

// AnalyzeSeasonality buckets loans by calendar month regardless of year.
// It returns ErrInsufficientData when no loan has a usable date.
func AnalyzeSeasonality(loans []domain.LoanRecord, settings Settings) (domain.SeasonalProfile, error) {
	var counts [12]int
	usable := 0
	for _, l := range loans {
		if l.LoanedAt.IsZero() {
			continue
		}
		counts[l.LoanedAt.Month()-1]++
		usable++
	}
	if usable == 0 {
		return domain.SeasonalProfile{}, ErrInsufficientData
	}

	months := make([]domain.SeasonalMonth, 12)
	peak, trough := counts[0], counts[0]
	sum := 0
	for i, c := range counts {
		months[i] = domain.SeasonalMonth{
			Month: i + 1,
			Label: time.Month(i + 1).String(),
			Count: c,
		}
		sum += c
		peak = max(peak, c)
		trough = min(trough, c)
	}
	avg := float64(sum) / 12

	var peakMonths, troughMonths []string
	for _, m := range months {
		if m.Count == peak {
			peakMonths = append(peakMonths, m.Label)
		}
		if m.Count == trough {
			troughMonths = append(troughMonths, m.Label)
		}
	}

	return domain.SeasonalProfile{
		Months:       months,
		Mean:         avg,
		Peak:         peak,
		Trough:       trough,
		PeakMonths:   peakMonths,
		TroughMonths: troughMonths,
		Insights:     seasonalInsights(months, avg, settings),
	}, nil
}

func seasonalInsights(months []domain.SeasonalMonth, avg float64, settings Settings) []string {
	var insights []string
	for _, m := range months {
		count := float64(m.Count)
		switch {
		case count > avg*settings.SeasonalHighFactor:
			insights = append(insights, fmt.Sprintf("%s: high demand, prepare stock ahead", m.Label))
		case count > 0 && count < avg*settings.SeasonalLowFactor:
			insights = append(insights, fmt.Sprintf("%s: low demand, ideal for maintenance window", m.Label))
		}
	}
	if len(insights) == 0 {
		return []string{evenDemandInsight}
	}
	return insights
}
