package csvfile

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/equipment-insights/pkg/adapters"
	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/de-tools/equipment-insights/pkg/models/store"
)

var (
	equipmentHeader   = []string{"id", "name", "category", "status", "acquired_at", "acquisition_value", "lifetime_years", "registered_at"}
	loansHeader       = []string{"id", "equipment_id", "loaned_at", "returned_at", "status"}
	maintenanceHeader = []string{"id", "equipment_id", "cost", "performed_at"}
)

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// Dataset is the content of one set of inventory CSV files.
type Dataset struct {
	Equipment   []store.EquipmentRow
	Loans       []store.LoanRow
	Maintenance []store.MaintenanceRow
}

// Records converts the dataset into analysis records.
func (d Dataset) Records() ([]domain.LoanRecord, []domain.AssetRecord, []domain.MaintenanceRecord, error) {
	assets := make([]domain.AssetRecord, 0, len(d.Equipment))
	for _, row := range d.Equipment {
		a, err := adapters.MapEquipmentRowToDomainAsset(row)
		if err != nil {
			return nil, nil, nil, err
		}
		assets = append(assets, a)
	}

	loans := make([]domain.LoanRecord, 0, len(d.Loans))
	for _, row := range d.Loans {
		l, err := adapters.MapLoanRowToDomainLoan(row)
		if err != nil {
			return nil, nil, nil, err
		}
		loans = append(loans, l)
	}

	maintenance := make([]domain.MaintenanceRecord, 0, len(d.Maintenance))
	for _, row := range d.Maintenance {
		maintenance = append(maintenance, adapters.MapMaintenanceRowToDomain(row))
	}
	return loans, assets, maintenance, nil
}

// Loader reads inventory exports from CSV files.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadDataset reads the equipment and loans files and, when maintenancePath
// is not empty, the maintenance file.
func (l *Loader) LoadDataset(equipmentPath, loansPath, maintenancePath string) (Dataset, error) {
	var ds Dataset

	equipment, err := openAndRead(equipmentPath, "equipment", l.ReadEquipment)
	if err != nil {
		return ds, err
	}
	loans, err := openAndRead(loansPath, "loans", l.ReadLoans)
	if err != nil {
		return ds, err
	}
	ds.Equipment = equipment
	ds.Loans = loans

	if maintenancePath != "" {
		maintenance, err := openAndRead(maintenancePath, "maintenance", l.ReadMaintenance)
		if err != nil {
			return ds, err
		}
		ds.Maintenance = maintenance
	}
	return ds, nil
}

func openAndRead[T any](path, kind string, read func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, path, err)
	}
	defer file.Close()
	return read(file)
}

func (l *Loader) ReadEquipment(r io.Reader) ([]store.EquipmentRow, error) {
	records, err := readRecords(r, "equipment", equipmentHeader)
	if err != nil {
		return nil, err
	}

	rows := make([]store.EquipmentRow, 0, len(records))
	for i, record := range records {
		row, err := parseEquipment(record)
		if err != nil {
			return nil, fmt.Errorf("equipment CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *Loader) ReadLoans(r io.Reader) ([]store.LoanRow, error) {
	records, err := readRecords(r, "loans", loansHeader)
	if err != nil {
		return nil, err
	}

	rows := make([]store.LoanRow, 0, len(records))
	for i, record := range records {
		row, err := parseLoan(record)
		if err != nil {
			return nil, fmt.Errorf("loans CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *Loader) ReadMaintenance(r io.Reader) ([]store.MaintenanceRow, error) {
	records, err := readRecords(r, "maintenance", maintenanceHeader)
	if err != nil {
		return nil, err
	}

	rows := make([]store.MaintenanceRow, 0, len(records))
	for i, record := range records {
		row, err := parseMaintenance(record)
		if err != nil {
			return nil, fmt.Errorf("maintenance CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readRecords validates the header and returns the data rows.
func readRecords(r io.Reader, kind string, expectedHeader []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s CSV is empty", kind)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", kind, expectedHeader, header)
	}
	return records[1:], nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range header {
		if strings.TrimSpace(strings.ToLower(col)) != expected[i] {
			return false
		}
	}
	return true
}

func parseEquipment(record []string) (store.EquipmentRow, error) {
	row := store.EquipmentRow{
		ID:       strings.TrimSpace(record[0]),
		Name:     strings.TrimSpace(record[1]),
		Category: strings.TrimSpace(record[2]),
	}
	if row.ID == "" {
		return row, fmt.Errorf("id is required")
	}

	status, err := domain.ParseAssetStatus(record[3])
	if err != nil {
		return row, err
	}
	row.Status = string(status)

	if row.AcquiredAt, err = parseNullTime(record[4], "acquired_at"); err != nil {
		return row, err
	}
	if v := strings.TrimSpace(record[5]); v != "" {
		value, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return row, fmt.Errorf("invalid acquisition_value %q: %w", v, err)
		}
		row.AcquisitionValue = sql.NullFloat64{Float64: value, Valid: true}
	}
	if v := strings.TrimSpace(record[6]); v != "" {
		years, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return row, fmt.Errorf("invalid lifetime_years %q: %w", v, err)
		}
		row.LifetimeYears = sql.NullInt64{Int64: years, Valid: true}
	}

	registered, err := parseNullTime(record[7], "registered_at")
	if err != nil {
		return row, err
	}
	switch {
	case registered.Valid:
		row.RegisteredAt = registered.Time
	case row.AcquiredAt.Valid:
		row.RegisteredAt = row.AcquiredAt.Time
	}
	return row, nil
}

func parseLoan(record []string) (store.LoanRow, error) {
	row := store.LoanRow{
		ID:          strings.TrimSpace(record[0]),
		EquipmentID: strings.TrimSpace(record[1]),
	}
	if row.ID == "" {
		return row, fmt.Errorf("id is required")
	}

	loaned, err := parseNullTime(record[2], "loaned_at")
	if err != nil {
		return row, err
	}
	if !loaned.Valid {
		return row, fmt.Errorf("loaned_at is required")
	}
	row.LoanedAt = loaned.Time

	if row.ReturnedAt, err = parseNullTime(record[3], "returned_at"); err != nil {
		return row, err
	}

	status, err := domain.ParseLoanStatus(record[4])
	if err != nil {
		return row, err
	}
	row.Status = string(status)
	return row, nil
}

func parseMaintenance(record []string) (store.MaintenanceRow, error) {
	row := store.MaintenanceRow{
		ID:          strings.TrimSpace(record[0]),
		EquipmentID: strings.TrimSpace(record[1]),
	}
	if row.ID == "" {
		return row, fmt.Errorf("id is required")
	}

	cost, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return row, fmt.Errorf("invalid cost %q: %w", record[2], err)
	}
	row.Cost = cost

	performed, err := parseNullTime(record[3], "performed_at")
	if err != nil {
		return row, err
	}
	if !performed.Valid {
		return row, fmt.Errorf("performed_at is required")
	}
	row.PerformedAt = performed.Time
	return row, nil
}

func parseNullTime(value, field string) (sql.NullTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return sql.NullTime{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return sql.NullTime{Time: t.UTC(), Valid: true}, nil
		}
	}
	return sql.NullTime{}, fmt.Errorf("invalid %s %q", field, value)
}
