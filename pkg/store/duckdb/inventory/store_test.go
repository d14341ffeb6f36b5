package inventory

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/equipment-insights/pkg/models/store"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: s,
	}
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seed(t *testing.T, f *fixture) {
	ctx := context.Background()
	require.NoError(t, f.store.AddEquipment(ctx, []store.EquipmentRow{
		{
			ID: "NB-001", Name: "ThinkPad T14", Category: "Notebook", Status: "InStock",
			AcquiredAt:       sql.NullTime{Time: at("2023-01-10"), Valid: true},
			AcquisitionValue: sql.NullFloat64{Float64: 6500, Valid: true},
			LifetimeYears:    sql.NullInt64{Int64: 4, Valid: true},
			RegisteredAt:     at("2023-01-12"),
		},
		{ID: "MON-001", Name: "Dell P2422H", Category: "Monitor", Status: "OnLoan", RegisteredAt: at("2024-03-01")},
	}))
	require.NoError(t, f.store.AddLoans(ctx, []store.LoanRow{
		{ID: "L-1", EquipmentID: "NB-001", LoanedAt: at("2025-01-05"), ReturnedAt: sql.NullTime{Time: at("2025-01-20"), Valid: true}, Status: "Returned"},
		{ID: "L-2", EquipmentID: "NB-001", LoanedAt: at("2025-03-02"), Status: "Active"},
		{ID: "L-3", EquipmentID: "MON-001", LoanedAt: at("2025-02-14"), Status: "Active"},
		{ID: "L-4", EquipmentID: "GHOST", LoanedAt: at("2025-02-01"), Status: "Active"},
	}))
	require.NoError(t, f.store.AddMaintenance(ctx, []store.MaintenanceRow{
		{ID: "M-1", EquipmentID: "NB-001", Cost: 250.75, PerformedAt: at("2025-02-01")},
		{ID: "M-2", EquipmentID: "MON-001", Cost: 80, PerformedAt: at("2025-04-01")},
	}))
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestInventoryStore_ListEquipment(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		rows, err := f.store.ListEquipment(ctx, Query{})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "MON-001", rows[0].ID)
		assert.False(t, rows[0].AcquiredAt.Valid)
		assert.False(t, rows[0].AcquisitionValue.Valid)

		nb := rows[1]
		assert.Equal(t, "NB-001", nb.ID)
		assert.Equal(t, "Notebook", nb.Category)
		assert.True(t, nb.AcquiredAt.Time.Equal(at("2023-01-10")))
		assert.Equal(t, 6500.0, nb.AcquisitionValue.Float64)
		assert.Equal(t, int64(4), nb.LifetimeYears.Int64)
		assert.True(t, nb.RegisteredAt.Equal(at("2023-01-12")))
	})

	t.Run("by category", func(t *testing.T) {
		rows, err := f.store.ListEquipment(ctx, Query{Category: "Monitor"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "MON-001", rows[0].ID)
	})
}

func TestInventoryStore_ListLoans(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	t.Run("ordered by loan date with category", func(t *testing.T) {
		rows, err := f.store.ListLoans(ctx, Query{})
		require.NoError(t, err)
		require.Len(t, rows, 4)

		ids := make([]string, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"L-1", "L-4", "L-3", "L-2"}, ids)

		assert.Equal(t, "Notebook", rows[0].Category.String)
		assert.True(t, rows[0].ReturnedAt.Valid)
		assert.False(t, rows[1].Category.Valid, "loan of unknown equipment has no category")
	})

	t.Run("category and date range", func(t *testing.T) {
		from, to := at("2025-02-01"), at("2025-03-31")
		rows, err := f.store.ListLoans(ctx, Query{Category: "Notebook", From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "L-2", rows[0].ID)
	})
}

func TestInventoryStore_ListMaintenance(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	rows, err := f.store.ListMaintenance(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 250.75, rows[0].Cost)

	from := at("2025-03-01")
	rows, err = f.store.ListMaintenance(ctx, Query{From: &from})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "M-2", rows[0].ID)
}

func TestInventoryStore_AddUpserts(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	err := f.store.AddLoans(ctx, []store.LoanRow{
		{ID: "L-2", EquipmentID: "NB-001", LoanedAt: at("2025-03-02"), ReturnedAt: sql.NullTime{Time: at("2025-03-09"), Valid: true}, Status: "Returned"},
	})
	require.NoError(t, err)

	var status string
	require.NoError(t, f.db.QueryRow("SELECT status FROM loans WHERE id = ?", "L-2").Scan(&status))
	assert.Equal(t, "Returned", status)

	var count int
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM loans").Scan(&count))
	assert.Equal(t, 4, count)

	require.NoError(t, f.store.AddLoans(ctx, nil))
}

func TestInventoryStore_AddInTransaction(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	err := duckdb.InTransaction(ctx, f.db, func(ctx context.Context) error {
		if err := f.store.AddEquipment(ctx, []store.EquipmentRow{
			{ID: "KB-001", Name: "Keychron K2", Category: "Keyboard", Status: "InStock", RegisteredAt: at("2025-01-01")},
		}); err != nil {
			return err
		}
		return errors.New("import aborted")
	})
	require.Error(t, err)

	rows, err := f.store.ListEquipment(ctx, Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestInventoryStore_QueryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("query failure is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM loans").WillReturnError(errors.New("connection reset"))

		s, err := NewStore(db)
		require.NoError(t, err)

		_, err = s.ListLoans(ctx, Query{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query loans")
		assert.Contains(t, err.Error(), "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters become arguments", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		from := at("2025-01-01")
		mock.ExpectQuery("SELECT (.+) FROM maintenance m (.+) WHERE e.category = \\? AND m.performed_at >= \\?").
			WithArgs("Notebook", from).
			WillReturnRows(sqlmock.NewRows([]string{"id", "equipment_id", "cost", "performed_at"}).
				AddRow("M-1", "NB-001", 99.9, at("2025-01-15")))

		s, err := NewStore(db)
		require.NoError(t, err)

		rows, err := s.ListMaintenance(ctx, Query{Category: "Notebook", From: &from})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 99.9, rows[0].Cost)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM equipment").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("NB-001", "ThinkPad"))

		s, err := NewStore(db)
		require.NoError(t, err)

		_, err = s.ListEquipment(ctx, Query{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan equipment")
	})

	t.Run("prepare failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPrepare("INSERT OR REPLACE INTO maintenance").WillReturnError(errors.New("read-only database"))

		s, err := NewStore(db)
		require.NoError(t, err)

		err = s.AddMaintenance(ctx, []store.MaintenanceRow{{ID: "M-1", EquipmentID: "NB-001", Cost: 10, PerformedAt: at("2025-01-01")}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prepare statement")
	})
}
