package analytics

import (
	"sort"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

const monthKeyLayout = "2006-01"

// AggregateMonthly groups loans into per-category monthly counts in ascending month order.
// Loans without a category or loan date are ignored.
func AggregateMonthly(loans []domain.LoanRecord) map[string][]domain.MonthlyCount {
	buckets := make(map[string]map[string]int)
	for _, l := range loans {
		if l.Category == "" || l.LoanedAt.IsZero() {
			continue
		}
		months, ok := buckets[l.Category]
		if !ok {
			months = make(map[string]int)
			buckets[l.Category] = months
		}
		months[l.LoanedAt.Format(monthKeyLayout)]++
	}

	series := make(map[string][]domain.MonthlyCount, len(buckets))
	for category, months := range buckets {
		keys := make([]string, 0, len(months))
		for k := range months {
			keys = append(keys, k)
		}
		// YYYY-MM sorts chronologically
		sort.Strings(keys)

		counts := make([]domain.MonthlyCount, 0, len(keys))
		for _, k := range keys {
			counts = append(counts, domain.MonthlyCount{MonthKey: k, Count: months[k]})
		}
		series[category] = counts
	}
	return series
}

// sortedCategories returns the map keys in name order so results do not depend on map iteration.
func sortedCategories(series map[string][]domain.MonthlyCount) []string {
	categories := make([]string, 0, len(series))
	for c := range series {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
