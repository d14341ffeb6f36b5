package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Title:       "Demand forecast (90 day horizon)",
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Sections: []domain.ReportSection{{
			Title: "Notebook",
			Summary: []domain.ReportSummary{
				{Key: "Recommendation", Value: "comprar (alta priority)"},
				{Key: "Reasons", Value: ""},
			},
			Details: []domain.ReportDetail{
				{Name: "Total units", Value: 10, Unit: "units"},
				{Name: "Growth rate", Value: 50.0, Unit: "%", Description: "projected vs recent mean"},
			},
		}},
	}
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Demand forecast (90 day horizon)")
	assert.Contains(t, out, "Generated: 2025-06-15 12:00 UTC")
	assert.Contains(t, out, "=== Notebook ===")
	assert.Contains(t, out, "Recommendation: comprar (alta priority)")
	assert.NotContains(t, out, "Reasons:")
	assert.Contains(t, out, "| Total units ")
	assert.Contains(t, out, "| projected vs recent mean ")

	var rows int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| ") {
			rows++
		}
	}
	assert.Equal(t, 3, rows, "header plus two details")
}

func TestReporter_Message(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{Title: "Seasonality", Message: "Insufficient data for seasonality analysis."}
	require.NoError(t, NewReporter(&buf).Handle(report))
	assert.Contains(t, buf.String(), "Insufficient data for seasonality analysis.")
	assert.NotContains(t, buf.String(), "===")
}

func TestListReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewListReporter(&buf).Handle(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Demand forecast (90 day horizon) (2025-06-15)")
	assert.Contains(t, out, "- Total units: 10 units")
	assert.Contains(t, out, "- Growth rate: 50 %\n  projected vs recent mean")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
