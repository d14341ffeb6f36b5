package store

import (
	"database/sql"
	"time"
)

// EquipmentRow mirrors the equipment table.
type EquipmentRow struct {
	ID               string
	Name             string
	Category         string
	Status           string
	AcquiredAt       sql.NullTime
	AcquisitionValue sql.NullFloat64
	LifetimeYears    sql.NullInt64
	RegisteredAt     time.Time
}

// LoanRow mirrors the loans table joined with the equipment category.
type LoanRow struct {
	ID          string
	EquipmentID string
	Category    sql.NullString
	LoanedAt    time.Time
	ReturnedAt  sql.NullTime
	Status      string
}

type MaintenanceRow struct {
	ID          string
	EquipmentID string
	Cost        float64
	PerformedAt time.Time
}
