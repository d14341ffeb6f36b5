package insights

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/equipment-insights/pkg/adapters"
	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb/inventory"
)

type storeRepository struct {
	store inventory.Store
}

// NewStoreRepository reads the snapshot from the inventory store. Rows with
// an unknown status are skipped.
func NewStoreRepository(store inventory.Store) Repository {
	return &storeRepository{store: store}
}

func toQuery(f Filter) inventory.Query {
	return inventory.Query{Category: f.Category, From: f.From, To: f.To}
}

func (r *storeRepository) ListLoans(ctx context.Context, filter Filter) ([]domain.LoanRecord, error) {
	rows, err := r.store.ListLoans(ctx, toQuery(filter))
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	loans := make([]domain.LoanRecord, 0, len(rows))
	for _, row := range rows {
		loan, err := adapters.MapLoanRowToDomainLoan(row)
		if err != nil {
			logger.Warn().Err(err).Msg("skipping loan")
			continue
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

func (r *storeRepository) ListAssets(ctx context.Context, filter Filter) ([]domain.AssetRecord, error) {
	rows, err := r.store.ListEquipment(ctx, inventory.Query{Category: filter.Category})
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	assets := make([]domain.AssetRecord, 0, len(rows))
	for _, row := range rows {
		asset, err := adapters.MapEquipmentRowToDomainAsset(row)
		if err != nil {
			logger.Warn().Err(err).Msg("skipping equipment")
			continue
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (r *storeRepository) ListMaintenance(ctx context.Context, filter Filter) ([]domain.MaintenanceRecord, error) {
	rows, err := r.store.ListMaintenance(ctx, toQuery(filter))
	if err != nil {
		return nil, err
	}

	records := make([]domain.MaintenanceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, adapters.MapMaintenanceRowToDomain(row))
	}
	return records, nil
}
