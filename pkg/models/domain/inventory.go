package domain

import (
	"fmt"
	"strings"
	"time"
)

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "Active"
	LoanStatusReturned LoanStatus = "Returned"
)

type AssetStatus string

const (
	AssetStatusInStock     AssetStatus = "InStock"
	AssetStatusOnLoan      AssetStatus = "OnLoan"
	AssetStatusMaintenance AssetStatus = "Maintenance"
	AssetStatusInactive    AssetStatus = "Inactive"
)

// DefaultLifetimeYears is used when an asset has no expected lifetime recorded.
const DefaultLifetimeYears = 5

// LoanRecord is a read-only view of a single equipment loan.
type LoanRecord struct {
	ID          string
	EquipmentID string
	Category    string // Notebook, Monitor, ...
	LoanedAt    time.Time
	ReturnedAt  *time.Time
	Status      LoanStatus
}

// Returned reports whether the loan is closed and has a usable return date.
func (l LoanRecord) Returned() bool {
	return l.Status == LoanStatusReturned && l.ReturnedAt != nil
}

// AssetRecord is a read-only view of a piece of equipment.
type AssetRecord struct {
	ID                    string
	Name                  string
	Category              string
	AcquiredAt            *time.Time
	AcquisitionValue      *float64
	ExpectedLifetimeYears int
	Status                AssetStatus
	RegisteredAt          time.Time
}

// LifetimeYears returns the expected lifetime, falling back to DefaultLifetimeYears.
func (a AssetRecord) LifetimeYears() int {
	if a.ExpectedLifetimeYears <= 0 {
		return DefaultLifetimeYears
	}
	return a.ExpectedLifetimeYears
}

// Value returns the acquisition value or 0 when unknown.
func (a AssetRecord) Value() float64 {
	if a.AcquisitionValue == nil {
		return 0
	}
	return *a.AcquisitionValue
}

type MaintenanceRecord struct {
	AssetID     string
	Cost        float64
	PerformedAt time.Time
}

// ParseAssetStatus accepts the canonical names and the labels used by the legacy inventory screens.
func ParseAssetStatus(s string) (AssetStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "instock", "in_stock", "estoque":
		return AssetStatusInStock, nil
	case "onloan", "on_loan", "emprestado":
		return AssetStatusOnLoan, nil
	case "maintenance", "manutenção", "manutencao":
		return AssetStatusMaintenance, nil
	case "inactive", "inativo":
		return AssetStatusInactive, nil
	default:
		return "", fmt.Errorf("unknown asset status %q", s)
	}
}

// ParseLoanStatus maps overdue loans to Active: they are still open.
func ParseLoanStatus(s string) (LoanStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "ativo", "overdue", "atrasado":
		return LoanStatusActive, nil
	case "returned", "devolvido":
		return LoanStatusReturned, nil
	default:
		return "", fmt.Errorf("unknown loan status %q", s)
	}
}
