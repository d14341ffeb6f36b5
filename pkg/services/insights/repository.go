package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

// Filter narrows the records fed to an analysis. Loans are filtered by
// LoanedAt and maintenance by PerformedAt; both bounds are inclusive.
type Filter struct {
	Category string
	From     *time.Time
	To       *time.Time
}

// Matches reports whether t falls inside the filter's date range.
func (f Filter) Matches(t time.Time) bool {
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.To != nil && t.After(*f.To) {
		return false
	}
	return true
}

const dayLayout = "2006-01-02"

// ParseFrom parses a lower date bound given as YYYY-MM-DD or RFC3339.
// An empty value means no bound.
func ParseFrom(value string) (*time.Time, error) {
	return parseBound(value, false)
}

// ParseTo parses an upper date bound given as YYYY-MM-DD or RFC3339. A bare
// date covers the whole day.
func ParseTo(value string) (*time.Time, error) {
	return parseBound(value, true)
}

func parseBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(dayLayout, value); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%q is not a date (expected YYYY-MM-DD)", value)
}

type Repository interface {
	ListLoans(ctx context.Context, filter Filter) ([]domain.LoanRecord, error)
	ListAssets(ctx context.Context, filter Filter) ([]domain.AssetRecord, error)
	ListMaintenance(ctx context.Context, filter Filter) ([]domain.MaintenanceRecord, error)
}
