package memory

import (
	"context"
	"sync"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/de-tools/equipment-insights/pkg/services/insights"
)

// Repository keeps the inventory in memory. It backs the CSV workflow and tests.
type Repository struct {
	mu          sync.RWMutex
	loans       []domain.LoanRecord
	assets      []domain.AssetRecord
	maintenance []domain.MaintenanceRecord
}

func NewRepository(
	loans []domain.LoanRecord,
	assets []domain.AssetRecord,
	maintenance []domain.MaintenanceRecord,
) *Repository {
	r := &Repository{}
	r.Replace(loans, assets, maintenance)
	return r
}

// Replace swaps the whole inventory. Loans without a category inherit the
// category of their equipment.
func (r *Repository) Replace(
	loans []domain.LoanRecord,
	assets []domain.AssetRecord,
	maintenance []domain.MaintenanceRecord,
) {
	categories := make(map[string]string, len(assets))
	for _, a := range assets {
		categories[a.ID] = a.Category
	}

	enriched := make([]domain.LoanRecord, len(loans))
	for i, l := range loans {
		if l.Category == "" {
			l.Category = categories[l.EquipmentID]
		}
		enriched[i] = l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loans = enriched
	r.assets = append([]domain.AssetRecord(nil), assets...)
	r.maintenance = append([]domain.MaintenanceRecord(nil), maintenance...)
}

func (r *Repository) ListLoans(_ context.Context, filter insights.Filter) ([]domain.LoanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.LoanRecord, 0, len(r.loans))
	for _, l := range r.loans {
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if !filter.Matches(l.LoanedAt) {
			continue
		}
		result = append(result, l)
	}
	return result, nil
}

func (r *Repository) ListAssets(_ context.Context, filter insights.Filter) ([]domain.AssetRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.AssetRecord, 0, len(r.assets))
	for _, a := range r.assets {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *Repository) ListMaintenance(_ context.Context, filter insights.Filter) ([]domain.MaintenanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var categories map[string]string
	if filter.Category != "" {
		categories = make(map[string]string, len(r.assets))
		for _, a := range r.assets {
			categories[a.ID] = a.Category
		}
	}

	result := make([]domain.MaintenanceRecord, 0, len(r.maintenance))
	for _, m := range r.maintenance {
		if categories != nil && categories[m.AssetID] != filter.Category {
			continue
		}
		if !filter.Matches(m.PerformedAt) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}
