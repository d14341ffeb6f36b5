package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/de-tools/equipment-insights/pkg/models/api"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetForecast    = "Forecast"
	SheetSeasonality = "Seasonality"
	SheetInsights    = "Insights"
	SheetROI         = "ROI"
	SheetUtilization = "Utilization"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

// BuildWorkbook lays out every analysis of the dashboard on its own sheet.
func BuildWorkbook(d api.DashboardResponse) (*excelize.File, error) {
	sheets := []sheet{
		forecastSheet(d.Forecast),
		seasonalitySheet(d.Seasonality),
		insightsSheet(d.Seasonality),
		roiSheet(d.Financial),
		utilizationSheet(d.Utilization),
	}

	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}

		if err := writeSheet(f, s, bold); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook streams the dashboard workbook to w.
func WriteWorkbook(w io.Writer, d api.DashboardResponse) error {
	f, err := BuildWorkbook(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the dashboard workbook to path.
func SaveWorkbook(path string, d api.DashboardResponse) error {
	f, err := BuildWorkbook(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for col, h := range s.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, h); err != nil {
			return fmt.Errorf("%s header: %w", s.name, err)
		}
	}
	if len(s.headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(s.headers), 1)
		if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("%s header style: %w", s.name, err)
		}
	}

	for r, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(s.name, cell, &values); err != nil {
			return fmt.Errorf("%s row %d: %w", s.name, r+2, err)
		}
	}
	return nil
}

func forecastSheet(r api.ForecastResponse) sheet {
	s := sheet{
		name: SheetForecast,
		headers: []string{
			"Category", "Total", "In stock", "Loans this month", "Mean monthly",
			"Month +1", "Month +2", "Month +3", "Growth %", "Utilization %",
			"Trend", "Action", "Priority", "Suggested qty", "Message", "Reasons",
		},
	}
	for _, f := range r.Forecasts {
		row := []interface{}{f.Category, f.TotalQty, f.StockQty, f.CurrentMonthLoans, f.MeanMonthly}
		for i := 0; i < 3; i++ {
			if i < len(f.ProjectedNext3) {
				row = append(row, f.ProjectedNext3[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row,
			f.GrowthRatePct, f.UtilizationPct, f.Trend,
			f.Recommendation.Action, f.Recommendation.Priority, f.Recommendation.SuggestedQty,
			f.Recommendation.Message, strings.Join(f.Recommendation.Reasons, "; "),
		)
		s.rows = append(s.rows, row)
	}
	return s
}

func seasonalitySheet(r api.SeasonalityResponse) sheet {
	s := sheet{
		name:    SheetSeasonality,
		headers: []string{"Month", "Loans", "Marker"},
	}
	for _, m := range r.Monthly {
		s.rows = append(s.rows, []interface{}{m.Label, m.Qty, seasonalMarker(m.Qty, r)})
	}
	return s
}

// seasonalMarker tags the extreme months. A flat year is both peak and trough;
// a year without loans has no extremes.
func seasonalMarker(qty int, r api.SeasonalityResponse) string {
	if r.Peak == 0 {
		return ""
	}
	var markers []string
	if qty == r.Peak {
		markers = append(markers, "peak")
	}
	if qty == r.Trough {
		markers = append(markers, "trough")
	}
	return strings.Join(markers, ", ")
}

func insightsSheet(r api.SeasonalityResponse) sheet {
	s := sheet{
		name:    SheetInsights,
		headers: []string{"Insight"},
	}
	for _, insight := range r.Insights {
		s.rows = append(s.rows, []interface{}{insight})
	}
	return s
}

func roiSheet(r api.FinancialResponse) sheet {
	s := sheet{
		name: SheetROI,
		headers: []string{
			"Ranking", "Asset", "Name", "Category", "Acquisition value", "Residual value",
			"Usage days", "Maintenance cost", "ROI %", "Age (years)", "Class",
		},
	}
	add := func(ranking string, records []api.ROIRecord) {
		for _, rec := range records {
			s.rows = append(s.rows, []interface{}{
				ranking, rec.AssetID, rec.Name, rec.Category, rec.AcquisitionValue, rec.ResidualValue,
				rec.UsageDays, rec.MaintenanceCost, rec.ROIPct, rec.AgeYears, rec.Class,
			})
		}
	}
	add("top", r.TopROI)
	add("bottom", r.BottomROI)
	return s
}

func utilizationSheet(r api.UtilizationResponse) sheet {
	s := sheet{
		name: SheetUtilization,
		headers: []string{
			"List", "Asset", "Name", "Category", "Status", "Total loans",
			"Loans (90 days)", "Days on loan", "Occupancy %", "Tier", "Recommendation",
		},
	}
	add := func(list string, profiles []api.UtilizationProfile) {
		for _, p := range profiles {
			s.rows = append(s.rows, []interface{}{
				list, p.AssetID, p.Name, p.Category, p.Status, p.TotalLoans,
				p.RecentLoans90d, p.DaysOnLoan, p.OccupancyPct, p.Tier, p.Recommendation,
			})
		}
	}
	add("most requested", r.MostRequested)
	add("underused", r.Underused)
	return s
}
