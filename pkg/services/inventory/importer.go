package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/equipment-insights/pkg/store/csvfile"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb/inventory"
)

type ImportSummary struct {
	Equipment   int
	Loans       int
	Maintenance int
}

// Importer writes a CSV dataset into the store as a single transaction.
type Importer interface {
	Import(ctx context.Context, ds csvfile.Dataset) (ImportSummary, error)
}

type storeImporter struct {
	db    *sql.DB
	store inventory.Store
}

func NewImporter(db *sql.DB, store inventory.Store) (Importer, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &storeImporter{db: db, store: store}, nil
}

func (i *storeImporter) Import(ctx context.Context, ds csvfile.Dataset) (ImportSummary, error) {
	err := duckdb.InTransaction(ctx, i.db, func(ctx context.Context) error {
		if err := i.store.AddEquipment(ctx, ds.Equipment); err != nil {
			return fmt.Errorf("import equipment: %w", err)
		}
		if err := i.store.AddLoans(ctx, ds.Loans); err != nil {
			return fmt.Errorf("import loans: %w", err)
		}
		if err := i.store.AddMaintenance(ctx, ds.Maintenance); err != nil {
			return fmt.Errorf("import maintenance: %w", err)
		}
		return nil
	})
	if err != nil {
		return ImportSummary{}, err
	}

	summary := ImportSummary{
		Equipment:   len(ds.Equipment),
		Loans:       len(ds.Loans),
		Maintenance: len(ds.Maintenance),
	}
	zerolog.Ctx(ctx).Info().
		Int("equipment", summary.Equipment).
		Int("loans", summary.Loans).
		Int("maintenance", summary.Maintenance).
		Msg("inventory imported")
	return summary, nil
}
