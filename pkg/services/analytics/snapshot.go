package analytics

import (
	"errors"
	"time"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

// ErrInsufficientData is returned when an analysis has nothing to work with.
// Callers treat it as an empty result, not as a failure.
var ErrInsufficientData = errors.New("insufficient data")

const hoursPerDay = 24

// Snapshot is the immutable input shared by all analyses of one request.
// TakenAt is the reference time for every date computation.
type Snapshot struct {
	Loans       []domain.LoanRecord
	Assets      []domain.AssetRecord
	Maintenance []domain.MaintenanceRecord
	TakenAt     time.Time
}

// wholeDays returns the number of complete days between from and to.
// Negative spans yield a negative number.
func wholeDays(from, to time.Time) int {
	d := to.Sub(from)
	days := int(d.Hours() / hoursPerDay)
	if d < 0 && d%(hoursPerDay*time.Hour) != 0 {
		days--
	}
	return days
}

// loanDays sums the days on loan of returned loans, clamping each loan at zero.
func loanDays(loans []domain.LoanRecord) int {
	total := 0
	for _, l := range loans {
		if !l.Returned() || l.LoanedAt.IsZero() {
			continue
		}
		if days := wholeDays(l.LoanedAt, *l.ReturnedAt); days > 0 {
			total += days
		}
	}
	return total
}

// loansByAsset indexes loans by equipment id.
func loansByAsset(loans []domain.LoanRecord) map[string][]domain.LoanRecord {
	byAsset := make(map[string][]domain.LoanRecord)
	for _, l := range loans {
		if l.EquipmentID == "" {
			continue
		}
		byAsset[l.EquipmentID] = append(byAsset[l.EquipmentID], l)
	}
	return byAsset
}

func ratioPct(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
