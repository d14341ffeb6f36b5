package insights

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/de-tools/equipment-insights/pkg/models/store"
	"github.com/de-tools/equipment-insights/pkg/services/analytics"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb/inventory"
)

func TestStoreRepository(t *testing.T) {
	ctx := testContext(t)

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	inv, err := inventory.NewStore(db)
	require.NoError(t, err)

	require.NoError(t, inv.AddEquipment(ctx, []store.EquipmentRow{
		{
			ID: "NB-1", Name: "ThinkPad", Category: "Notebook", Status: "emprestado",
			AcquiredAt:       sql.NullTime{Time: refTime.AddDate(-1, 0, 0), Valid: true},
			AcquisitionValue: sql.NullFloat64{Float64: 5000, Valid: true},
			RegisteredAt:     refTime.AddDate(-1, 0, 0),
		},
		{ID: "NB-2", Name: "Broken row", Category: "Notebook", Status: "lost", RegisteredAt: refTime},
	}))

	var loans []store.LoanRow
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		loaned := start.AddDate(0, i, 0)
		loans = append(loans, store.LoanRow{
			ID:          "L" + loaned.Format("0102"),
			EquipmentID: "NB-1",
			LoanedAt:    loaned,
			ReturnedAt:  sql.NullTime{Time: loaned.AddDate(0, 0, 3), Valid: true},
			Status:      "devolvido",
		})
	}
	require.NoError(t, inv.AddLoans(ctx, loans))
	require.NoError(t, inv.AddMaintenance(ctx, []store.MaintenanceRow{
		{ID: "M1", EquipmentID: "NB-1", Cost: 300, PerformedAt: refTime.AddDate(0, -2, 0)},
	}))

	repo := NewStoreRepository(inv)

	assets, err := repo.ListAssets(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, assets, 1, "equipment with an unknown status is skipped")
	assert.Equal(t, domain.AssetStatusOnLoan, assets[0].Status)
	assert.Equal(t, 5000.0, assets[0].Value())

	got, err := repo.ListLoans(ctx, Filter{Category: "Notebook"})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "Notebook", got[0].Category)
	assert.True(t, got[0].Returned())

	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	got, err = repo.ListLoans(ctx, Filter{From: &from})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	maintenance, err := repo.ListMaintenance(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, maintenance, 1)
	assert.Equal(t, "NB-1", maintenance[0].AssetID)

	svc := NewService(repo, analytics.DefaultSettings(), WithClock(fixedClock))
	resp, err := svc.Financial(ctx, Filter{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 300.0, resp.Totals.MaintenanceCost)
}
