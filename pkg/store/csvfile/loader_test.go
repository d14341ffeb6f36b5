package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

const equipmentCSV = `id,name,category,status,acquired_at,acquisition_value,lifetime_years,registered_at
NB-001,ThinkPad T14,Notebook,estoque,2023-01-10,6500.00,4,2023-01-12
MON-001,Dell P2422H,Monitor,emprestado,,,,
`

const loansCSV = `id,equipment_id,loaned_at,returned_at,status
L-1,NB-001,2025-01-05,2025-01-20,devolvido
L-2,MON-001,2025-02-14T09:30:00Z,,ativo
`

const maintenanceCSV = `id,equipment_id,cost,performed_at
M-1,NB-001,250.75,2025-02-01
`

func TestLoader_ReadEquipment(t *testing.T) {
	l := NewLoader()

	rows, err := l.ReadEquipment(strings.NewReader(equipmentCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	nb := rows[0]
	assert.Equal(t, "NB-001", nb.ID)
	assert.Equal(t, string(domain.AssetStatusInStock), nb.Status)
	assert.True(t, nb.AcquiredAt.Valid)
	assert.Equal(t, 6500.0, nb.AcquisitionValue.Float64)
	assert.Equal(t, int64(4), nb.LifetimeYears.Int64)
	assert.Equal(t, time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC), nb.RegisteredAt)

	mon := rows[1]
	assert.Equal(t, string(domain.AssetStatusOnLoan), mon.Status)
	assert.False(t, mon.AcquiredAt.Valid)
	assert.False(t, mon.AcquisitionValue.Valid)
	assert.True(t, mon.RegisteredAt.IsZero())
}

func TestLoader_ReadLoans(t *testing.T) {
	rows, err := NewLoader().ReadLoans(strings.NewReader(loansCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, string(domain.LoanStatusReturned), rows[0].Status)
	assert.True(t, rows[0].ReturnedAt.Valid)
	assert.Equal(t, time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC), rows[1].LoanedAt)
	assert.False(t, rows[1].ReturnedAt.Valid)
}

func TestLoader_Errors(t *testing.T) {
	l := NewLoader()

	tests := []struct {
		name    string
		read    func() error
		wantErr string
	}{
		{
			name: "header mismatch",
			read: func() error {
				_, err := l.ReadLoans(strings.NewReader("id,equipment,loaned_at,returned_at,status\n"))
				return err
			},
			wantErr: "loans CSV header mismatch",
		},
		{
			name: "empty file",
			read: func() error {
				_, err := l.ReadMaintenance(strings.NewReader(""))
				return err
			},
			wantErr: "maintenance CSV is empty",
		},
		{
			name: "bad date names the row",
			read: func() error {
				_, err := l.ReadLoans(strings.NewReader("id,equipment_id,loaned_at,returned_at,status\nL-1,NB-001,05/01/2025,,ativo\n"))
				return err
			},
			wantErr: "loans CSV row 2: invalid loaned_at",
		},
		{
			name: "missing loan date",
			read: func() error {
				_, err := l.ReadLoans(strings.NewReader("id,equipment_id,loaned_at,returned_at,status\nL-1,NB-001,,,ativo\n"))
				return err
			},
			wantErr: "loaned_at is required",
		},
		{
			name: "unknown status",
			read: func() error {
				_, err := l.ReadEquipment(strings.NewReader(
					"id,name,category,status,acquired_at,acquisition_value,lifetime_years,registered_at\nX,Y,Z,lost,,,,\n"))
				return err
			},
			wantErr: "equipment CSV row 2",
		},
		{
			name: "bad cost",
			read: func() error {
				_, err := l.ReadMaintenance(strings.NewReader("id,equipment_id,cost,performed_at\nM-1,NB-001,abc,2025-01-01\n"))
				return err
			},
			wantErr: "invalid cost",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_LoadDataset(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}
	equipment := write("equipment.csv", equipmentCSV)
	loans := write("loans.csv", loansCSV)
	maintenance := write("maintenance.csv", maintenanceCSV)

	t.Run("with maintenance", func(t *testing.T) {
		ds, err := NewLoader().LoadDataset(equipment, loans, maintenance)
		require.NoError(t, err)
		assert.Len(t, ds.Equipment, 2)
		assert.Len(t, ds.Loans, 2)
		assert.Len(t, ds.Maintenance, 1)

		loanRecords, assets, records, err := ds.Records()
		require.NoError(t, err)
		assert.Len(t, loanRecords, 2)
		assert.Len(t, assets, 2)
		require.Len(t, records, 1)
		assert.Equal(t, "NB-001", records[0].AssetID)
		assert.Equal(t, domain.LoanStatusActive, loanRecords[1].Status)
	})

	t.Run("without maintenance", func(t *testing.T) {
		ds, err := NewLoader().LoadDataset(equipment, loans, "")
		require.NoError(t, err)
		assert.Empty(t, ds.Maintenance)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().LoadDataset(filepath.Join(dir, "nope.csv"), loans, "")
		assert.ErrorContains(t, err, "failed to open equipment file")
	})
}
