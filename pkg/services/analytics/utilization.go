package analytics

import (
	"math"
	"sort"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

const (
	neverUsedText    = "never used → consider resale/reallocation"
	veryLowUsageText = "usage very low → review need"
	lowUsageText     = "low utilization → consider redistributing"
	highDemandText   = "high demand → consider acquiring a similar unit"
)

// ClassifyUtilization computes each asset's occupancy over its observed lifetime
// (capped at settings.OccupancyBaseDays) and places it in a usage tier.
func ClassifyUtilization(snap Snapshot, settings Settings) domain.UtilizationReport {
	loans := loansByAsset(snap.Loans)
	recentStart := snap.TakenAt.AddDate(0, 0, -settings.RecentLoanDays)

	stats := domain.UtilizationStats{
		ByTier: map[domain.UsageTier]int{
			domain.TierHigh:   0,
			domain.TierMedium: 0,
			domain.TierLow:    0,
		},
	}
	profiles := make([]domain.UtilizationProfile, 0, len(snap.Assets))
	occupancySum := 0.0

	for _, a := range snap.Assets {
		assetLoans := loans[a.ID]
		recent := 0
		for _, l := range assetLoans {
			if !l.LoanedAt.IsZero() && !l.LoanedAt.Before(recentStart) {
				recent++
			}
		}

		days := loanDays(assetLoans)
		occupancy := 0.0
		if base := baseDays(a, snap, settings); base > 0 {
			occupancy = math.Min(ratioPct(float64(days), float64(base)), 100)
		}
		tier := tierOf(occupancy, settings)

		profiles = append(profiles, domain.UtilizationProfile{
			AssetID:        a.ID,
			Name:           a.Name,
			Category:       a.Category,
			Status:         a.Status,
			TotalLoans:     len(assetLoans),
			RecentLoans90d: recent,
			DaysOnLoan:     days,
			OccupancyPct:   occupancy,
			Tier:           tier,
			Recommendation: tierRecommendation(tier, len(assetLoans), occupancy, settings),
		})

		stats.Total++
		stats.ByTier[tier]++
		occupancySum += occupancy
		if len(assetLoans) > 0 {
			stats.WithLoans++
		} else {
			stats.NeverUsed++
		}
	}
	if stats.Total > 0 {
		stats.MeanOccupancyPct = occupancySum / float64(stats.Total)
	}

	return domain.UtilizationReport{
		MostRequested: mostRequested(profiles, settings.RankingSize),
		Underused:     underused(profiles, settings.RankingSize),
		Stats:         stats,
	}
}

// baseDays is the observed lifetime in days, measured from registration
// (or acquisition when registration is unknown) and capped.
func baseDays(a domain.AssetRecord, snap Snapshot, settings Settings) int {
	since := a.RegisteredAt
	if since.IsZero() && a.AcquiredAt != nil {
		since = *a.AcquiredAt
	}
	if since.IsZero() {
		return 0
	}
	return min(wholeDays(since, snap.TakenAt), settings.OccupancyBaseDays)
}

func tierOf(occupancy float64, settings Settings) domain.UsageTier {
	switch {
	case occupancy >= settings.OccupancyHighPct:
		return domain.TierHigh
	case occupancy >= settings.OccupancyMediumPct:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

func tierRecommendation(tier domain.UsageTier, totalLoans int, occupancy float64, settings Settings) string {
	switch tier {
	case domain.TierHigh:
		return highDemandText
	case domain.TierLow:
		switch {
		case totalLoans == 0:
			return neverUsedText
		case occupancy < settings.OccupancyVeryLowPct:
			return veryLowUsageText
		default:
			return lowUsageText
		}
	default:
		return ""
	}
}

func mostRequested(profiles []domain.UtilizationProfile, size int) []domain.UtilizationProfile {
	ranked := make([]domain.UtilizationProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.TotalLoans > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OccupancyPct > ranked[j].OccupancyPct
	})
	return ranked[:min(size, len(ranked))]
}

func underused(profiles []domain.UtilizationProfile, size int) []domain.UtilizationProfile {
	ranked := make([]domain.UtilizationProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Tier == domain.TierLow {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OccupancyPct < ranked[j].OccupancyPct
	})
	return ranked[:min(size, len(ranked))]
}
