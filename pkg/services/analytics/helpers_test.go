package analytics

import (
	"time"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

var refTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}

func activeLoan(id, equipment, category, loaned string) domain.LoanRecord {
	return domain.LoanRecord{
		ID:          id,
		EquipmentID: equipment,
		Category:    category,
		LoanedAt:    day(loaned),
		Status:      domain.LoanStatusActive,
	}
}

func returnedLoan(id, equipment, category string, loaned time.Time, days int) domain.LoanRecord {
	return domain.LoanRecord{
		ID:          id,
		EquipmentID: equipment,
		Category:    category,
		LoanedAt:    loaned,
		ReturnedAt:  ptr(loaned.AddDate(0, 0, days)),
		Status:      domain.LoanStatusReturned,
	}
}

// monthlyLoans creates counts[i] loans in consecutive months starting at start.
func monthlyLoans(category string, start time.Time, counts ...int) []domain.LoanRecord {
	var loans []domain.LoanRecord
	for i, c := range counts {
		month := start.AddDate(0, i, 0)
		for j := 0; j < c; j++ {
			loans = append(loans, domain.LoanRecord{
				EquipmentID: category + "-eq",
				Category:    category,
				LoanedAt:    month.AddDate(0, 0, j%28),
				Status:      domain.LoanStatusActive,
			})
		}
	}
	return loans
}

func asset(id, category string, status domain.AssetStatus) domain.AssetRecord {
	return domain.AssetRecord{
		ID:           id,
		Name:         "asset " + id,
		Category:     category,
		Status:       status,
		RegisteredAt: refTime.AddDate(-2, 0, 0),
	}
}

func series(counts ...int) []domain.MonthlyCount {
	out := make([]domain.MonthlyCount, len(counts))
	start := day("2024-01-01")
	for i, c := range counts {
		out[i] = domain.MonthlyCount{MonthKey: start.AddDate(0, i, 0).Format(monthKeyLayout), Count: c}
	}
	return out
}
