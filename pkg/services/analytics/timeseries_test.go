package analytics

import (
	"testing"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMonthly(t *testing.T) {
	t.Run("groups by category and month in chronological order", func(t *testing.T) {
		loans := []domain.LoanRecord{
			activeLoan("1", "a", "Notebook", "2024-03-10"),
			activeLoan("2", "a", "Notebook", "2023-12-01"),
			activeLoan("3", "b", "Notebook", "2024-03-28"),
			activeLoan("4", "c", "Monitor", "2024-01-05"),
		}

		got := AggregateMonthly(loans)

		require.Len(t, got, 2)
		assert.Equal(t, []domain.MonthlyCount{
			{MonthKey: "2023-12", Count: 1},
			{MonthKey: "2024-03", Count: 2},
		}, got["Notebook"])
		assert.Equal(t, []domain.MonthlyCount{{MonthKey: "2024-01", Count: 1}}, got["Monitor"])
	})

	t.Run("drops records without category or loan date", func(t *testing.T) {
		loans := []domain.LoanRecord{
			activeLoan("1", "a", "", "2024-03-10"),
			{ID: "2", EquipmentID: "b", Category: "Monitor"},
		}

		assert.Empty(t, AggregateMonthly(loans))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, AggregateMonthly(nil))
	})
}

func TestAggregateMonthly_UniqueKeys(t *testing.T) {
	loans := monthlyLoans("Notebook", day("2024-01-01"), 4, 0, 2, 7)

	got := AggregateMonthly(loans)["Notebook"]

	seen := map[string]bool{}
	for i, m := range got {
		assert.False(t, seen[m.MonthKey], "duplicate month %s", m.MonthKey)
		seen[m.MonthKey] = true
		if i > 0 {
			assert.Less(t, got[i-1].MonthKey, m.MonthKey)
		}
	}
	assert.Len(t, got, 3)
}
