package analytics

import (
	"testing"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastSeries_MinimumData(t *testing.T) {
	settings := DefaultSettings()

	for _, n := range []int{0, 1, 2} {
		counts := make([]int, n)
		for i := range counts {
			counts[i] = i + 1
		}
		_, ok := ForecastSeries("Notebook", series(counts...), settings)
		assert.False(t, ok, "series of length %d must not be forecastable", n)
	}

	res, ok := ForecastSeries("Notebook", series(1, 2, 3), settings)
	require.True(t, ok)
	assert.Len(t, res.Projected, 3)
	assert.InDelta(t, 4, res.Projected[0], 1e-9)
	assert.InDelta(t, 5, res.Projected[1], 1e-9)
	assert.InDelta(t, 6, res.Projected[2], 1e-9)
	assert.InDelta(t, 2, res.MeanRecent3, 1e-9)
	assert.InDelta(t, 150, res.GrowthRatePct, 1e-9)
}

func TestForecastSeries_Monotonicity(t *testing.T) {
	settings := DefaultSettings()

	tests := []struct {
		name   string
		counts []int
		check  func(t *testing.T, growth float64)
	}{
		{
			name:   "strictly increasing",
			counts: []int{1, 2, 4, 5, 7, 9},
			check:  func(t *testing.T, g float64) { assert.Greater(t, g, 0.0) },
		},
		{
			name:   "strictly decreasing",
			counts: []int{12, 10, 7, 6, 3, 2},
			check:  func(t *testing.T, g float64) { assert.Less(t, g, 0.0) },
		},
		{
			name:   "constant",
			counts: []int{4, 4, 4, 4},
			check:  func(t *testing.T, g float64) { assert.Equal(t, 0.0, g) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ForecastSeries("Monitor", series(tt.counts...), settings)
			require.True(t, ok)
			tt.check(t, res.GrowthRatePct)
		})
	}
}

func TestForecastSeries_NotebookScenario(t *testing.T) {
	res, ok := ForecastSeries("Notebook", series(2, 3, 5, 8, 8, 9), DefaultSettings())
	require.True(t, ok)

	assert.Equal(t, "Notebook", res.Category)
	assert.Equal(t, 9, res.CurrentMonthCount)
	assert.InDelta(t, 25.0/3.0, res.MeanRecent3, 1e-9)
	// slope 26.5/17.5, projection mean at x=7
	slope := 26.5 / 17.5
	intercept := 35.0/6.0 - slope*2.5
	projectedMean := slope*7 + intercept
	assert.InDelta(t, (projectedMean-25.0/3.0)/(25.0/3.0)*100, res.GrowthRatePct, 1e-9)
	assert.Greater(t, res.GrowthRatePct, 0.0)
	assert.Len(t, res.History, 6)
}

func TestForecastSeries_HistoryKeepsLastSixMonths(t *testing.T) {
	res, ok := ForecastSeries("Dock", series(1, 1, 2, 3, 5, 8, 13, 21), DefaultSettings())
	require.True(t, ok)

	require.Len(t, res.History, 6)
	assert.Equal(t, 2, res.History[0].Count)
	assert.Equal(t, 21, res.History[5].Count)
}

func TestForecastSeries_NegativeProjectionReportedRaw(t *testing.T) {
	res, ok := ForecastSeries("Printer", series(9, 5, 1), DefaultSettings())
	require.True(t, ok)

	assert.InDelta(t, -3, res.Projected[0], 1e-9)
	assert.InDelta(t, -11, res.Projected[2], 1e-9)
}

func TestGrowthRate_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, growthRate(5, 0))
}

func TestTrendOf(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, domain.TrendGrowing, trendOf(5.1, settings))
	assert.Equal(t, domain.TrendStable, trendOf(5, settings))
	assert.Equal(t, domain.TrendStable, trendOf(-5, settings))
	assert.Equal(t, domain.TrendDecreasing, trendOf(-5.1, settings))
}
