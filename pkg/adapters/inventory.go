package adapters

import (
	"fmt"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/de-tools/equipment-insights/pkg/models/store"
)

func MapEquipmentRowToDomainAsset(row store.EquipmentRow) (domain.AssetRecord, error) {
	status, err := domain.ParseAssetStatus(row.Status)
	if err != nil {
		return domain.AssetRecord{}, fmt.Errorf("equipment %s: %w", row.ID, err)
	}

	asset := domain.AssetRecord{
		ID:           row.ID,
		Name:         row.Name,
		Category:     row.Category,
		Status:       status,
		RegisteredAt: row.RegisteredAt,
	}
	if row.AcquiredAt.Valid {
		t := row.AcquiredAt.Time
		asset.AcquiredAt = &t
	}
	if row.AcquisitionValue.Valid {
		v := row.AcquisitionValue.Float64
		asset.AcquisitionValue = &v
	}
	if row.LifetimeYears.Valid {
		asset.ExpectedLifetimeYears = int(row.LifetimeYears.Int64)
	}
	return asset, nil
}

func MapLoanRowToDomainLoan(row store.LoanRow) (domain.LoanRecord, error) {
	status, err := domain.ParseLoanStatus(row.Status)
	if err != nil {
		return domain.LoanRecord{}, fmt.Errorf("loan %s: %w", row.ID, err)
	}

	loan := domain.LoanRecord{
		ID:          row.ID,
		EquipmentID: row.EquipmentID,
		Category:    row.Category.String,
		LoanedAt:    row.LoanedAt,
		Status:      status,
	}
	if row.ReturnedAt.Valid {
		t := row.ReturnedAt.Time
		loan.ReturnedAt = &t
	}
	return loan, nil
}

func MapMaintenanceRowToDomain(row store.MaintenanceRow) domain.MaintenanceRecord {
	return domain.MaintenanceRecord{
		AssetID:     row.EquipmentID,
		Cost:        row.Cost,
		PerformedAt: row.PerformedAt,
	}
}
