package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const EquipmentTableSchema = `
	CREATE TABLE IF NOT EXISTS equipment (
		id VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		acquired_at TIMESTAMP NULL,
		acquisition_value DOUBLE NULL,
		lifetime_years INTEGER NULL,
		registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`
const LoansTableSchema = `
	CREATE TABLE IF NOT EXISTS loans (
		id VARCHAR NOT NULL PRIMARY KEY,
		equipment_id VARCHAR NOT NULL,
		loaned_at TIMESTAMP NOT NULL,
		returned_at TIMESTAMP NULL,
		status VARCHAR NOT NULL
	);
`
const MaintenanceTableSchema = `
	CREATE TABLE IF NOT EXISTS maintenance (
		id VARCHAR NOT NULL PRIMARY KEY,
		equipment_id VARCHAR NOT NULL,
		cost DOUBLE NOT NULL,
		performed_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	EquipmentTableSchema,
	LoansTableSchema,
	MaintenanceTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb %s: %w", settings.DbPath, err)
	}

	return sql.OpenDB(c), nil
}
