package analytics

import (
	"math"
	"sort"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const daysPerYear = 365.25

// AnalyzeFinancials computes depreciation and a heuristic ROI for every asset with a
// known acquisition value. Rankings are ordered by ROI; the bottom ranking is worst first
// and is only filled when more assets qualify than fit in the top ranking.
func AnalyzeFinancials(snap Snapshot, settings Settings) domain.FinancialReport {
	loans := loansByAsset(snap.Loans)
	maintenance := make(map[string]decimal.Decimal)
	for _, m := range snap.Maintenance {
		maintenance[m.AssetID] = maintenance[m.AssetID].Add(decimal.NewFromFloat(m.Cost))
	}

	var (
		records                                     []domain.ROIRecord
		totalValue, totalResidual, totalMaintenance decimal.Decimal
		roiSum                                      float64
	)
	for _, a := range snap.Assets {
		value := a.Value()
		if value <= 0 {
			continue
		}
		maintenanceCost := maintenance[a.ID]
		rec := assetROI(a, loans[a.ID], maintenanceCost.InexactFloat64(), snap, settings)
		records = append(records, rec)

		roiSum += rec.ROIPct
		totalValue = totalValue.Add(decimal.NewFromFloat(value))
		totalResidual = totalResidual.Add(decimal.NewFromFloat(rec.ResidualValue))
		totalMaintenance = totalMaintenance.Add(maintenanceCost)
	}

	report := domain.FinancialReport{
		Top:                   []domain.ROIRecord{},
		Bottom:                []domain.ROIRecord{},
		AssetsEvaluated:       len(records),
		TotalAcquisitionValue: totalValue.Round(2).InexactFloat64(),
		TotalResidualValue:    totalResidual.Round(2).InexactFloat64(),
		TotalMaintenanceCost:  totalMaintenance.Round(2).InexactFloat64(),
	}
	if len(records) == 0 {
		return report
	}
	report.MeanROIPct = roiSum / float64(len(records))

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ROIPct > records[j].ROIPct
	})

	size := settings.RankingSize
	report.Top = append(report.Top, records[:min(size, len(records))]...)
	if len(records) > size {
		for i := len(records) - 1; i >= len(records)-size; i-- {
			report.Bottom = append(report.Bottom, records[i])
		}
	}
	return report
}

func assetROI(
	a domain.AssetRecord,
	loans []domain.LoanRecord,
	maintenanceCost float64,
	snap Snapshot,
	settings Settings,
) domain.ROIRecord {
	value := a.Value()
	usageDays := loanDays(loans)

	age := 0.0
	if a.AcquiredAt != nil && !a.AcquiredAt.IsZero() {
		age = math.Max(float64(wholeDays(*a.AcquiredAt, snap.TakenAt))/daysPerYear, 0)
	}

	depreciation := math.Min(age/float64(a.LifetimeYears()), 1)
	residual := value * (1 - depreciation)

	generated := value * settings.ValuePerUsageDay * float64(usageDays)
	totalCost := value + maintenanceCost
	roi := 0.0
	if totalCost != 0 {
		roi = (generated - totalCost) / totalCost * 100
	}

	return domain.ROIRecord{
		AssetID:          a.ID,
		Name:             a.Name,
		Category:         a.Category,
		AcquisitionValue: value,
		ResidualValue:    residual,
		UsageDays:        usageDays,
		MaintenanceCost:  maintenanceCost,
		ROIPct:           roi,
		AgeYears:         age,
		Class:            roiClass(roi, settings),
	}
}

func roiClass(roi float64, settings Settings) domain.ROIClass {
	switch {
	case roi >= 0:
		return domain.ROIPositive
	case roi >= settings.ROINeutralFloorPct:
		return domain.ROINeutral
	default:
		return domain.ROINegative
	}
}
