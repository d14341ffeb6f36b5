package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/equipment-insights/pkg/models/store"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb"
)

// Query narrows list operations. Zero values disable a condition.
type Query struct {
	Category string
	From     *time.Time
	To       *time.Time
}

// Store persists equipment, loans and maintenance in DuckDB.
// Add* upsert by id and join a transaction from the context when present.
type Store interface {
	AddEquipment(ctx context.Context, rows []store.EquipmentRow) error
	AddLoans(ctx context.Context, rows []store.LoanRow) error
	AddMaintenance(ctx context.Context, rows []store.MaintenanceRow) error
	ListEquipment(ctx context.Context, q Query) ([]store.EquipmentRow, error)
	ListLoans(ctx context.Context, q Query) ([]store.LoanRow, error)
	ListMaintenance(ctx context.Context, q Query) ([]store.MaintenanceRow, error)
}

type inventoryStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &inventoryStore{
		db: db,
	}, nil
}

func (s *inventoryStore) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx.PrepareContext(ctx, query)
	}
	return s.db.PrepareContext(ctx, query)
}

func (s *inventoryStore) AddEquipment(ctx context.Context, rows []store.EquipmentRow) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT OR REPLACE INTO equipment (
			id, name, category, status, acquired_at,
			acquisition_value, lifetime_years, registered_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		registered := row.RegisteredAt
		if registered.IsZero() {
			registered = time.Now().UTC()
		}
		_, err := stmt.ExecContext(ctx,
			row.ID,
			row.Name,
			row.Category,
			row.Status,
			row.AcquiredAt,
			row.AcquisitionValue,
			row.LifetimeYears,
			registered,
		)
		if err != nil {
			return fmt.Errorf("insert equipment %s: %w", row.ID, err)
		}
	}
	return nil
}

func (s *inventoryStore) AddLoans(ctx context.Context, rows []store.LoanRow) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT OR REPLACE INTO loans (
			id, equipment_id, loaned_at, returned_at, status
		) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.ID,
			row.EquipmentID,
			row.LoanedAt,
			row.ReturnedAt,
			row.Status,
		)
		if err != nil {
			return fmt.Errorf("insert loan %s: %w", row.ID, err)
		}
	}
	return nil
}

func (s *inventoryStore) AddMaintenance(ctx context.Context, rows []store.MaintenanceRow) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT OR REPLACE INTO maintenance (
			id, equipment_id, cost, performed_at
		) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx, row.ID, row.EquipmentID, row.Cost, row.PerformedAt)
		if err != nil {
			return fmt.Errorf("insert maintenance %s: %w", row.ID, err)
		}
	}
	return nil
}

func (s *inventoryStore) ListEquipment(ctx context.Context, q Query) ([]store.EquipmentRow, error) {
	where, args := conditions(q.Category, "e.category", nil, nil, "")
	query := `
		SELECT e.id, e.name, e.category, e.status, e.acquired_at,
		       e.acquisition_value, e.lifetime_years, e.registered_at
		FROM equipment e` + where + `
		ORDER BY e.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	result := make([]store.EquipmentRow, 0)
	for rows.Next() {
		var row store.EquipmentRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Category, &row.Status, &row.AcquiredAt,
			&row.AcquisitionValue, &row.LifetimeYears, &row.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate equipment: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("rows", len(result)).Msg("equipment loaded")
	return result, nil
}

func (s *inventoryStore) ListLoans(ctx context.Context, q Query) ([]store.LoanRow, error) {
	where, args := conditions(q.Category, "e.category", q.From, q.To, "l.loaned_at")
	query := `
		SELECT l.id, l.equipment_id, e.category, l.loaned_at, l.returned_at, l.status
		FROM loans l
		LEFT JOIN equipment e ON e.id = l.equipment_id` + where + `
		ORDER BY l.loaned_at, l.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	result := make([]store.LoanRow, 0)
	for rows.Next() {
		var row store.LoanRow
		if err := rows.Scan(
			&row.ID, &row.EquipmentID, &row.Category, &row.LoanedAt, &row.ReturnedAt, &row.Status,
		); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("rows", len(result)).Msg("loans loaded")
	return result, nil
}

func (s *inventoryStore) ListMaintenance(ctx context.Context, q Query) ([]store.MaintenanceRow, error) {
	where, args := conditions(q.Category, "e.category", q.From, q.To, "m.performed_at")
	query := `
		SELECT m.id, m.equipment_id, m.cost, m.performed_at
		FROM maintenance m
		LEFT JOIN equipment e ON e.id = m.equipment_id` + where + `
		ORDER BY m.performed_at, m.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query maintenance: %w", err)
	}
	defer rows.Close()

	result := make([]store.MaintenanceRow, 0)
	for rows.Next() {
		var row store.MaintenanceRow
		if err := rows.Scan(&row.ID, &row.EquipmentID, &row.Cost, &row.PerformedAt); err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate maintenance: %w", err)
	}
	return result, nil
}

// conditions builds a WHERE clause for an optional category and an optional
// inclusive date range on dateColumn.
func conditions(category, categoryColumn string, from, to *time.Time, dateColumn string) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	if category != "" {
		clauses = append(clauses, categoryColumn+" = ?")
		args = append(args, category)
	}
	if from != nil && dateColumn != "" {
		clauses = append(clauses, dateColumn+" >= ?")
		args = append(args, *from)
	}
	if to != nil && dateColumn != "" {
		clauses = append(clauses, dateColumn+" <= ?")
		args = append(args, *to)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE " + strings.Join(clauses, " AND "), args
}
