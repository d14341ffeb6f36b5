package domain

// MonthlyCount is the number of loans that started in one calendar month.
type MonthlyCount struct {
	MonthKey string // YYYY-MM
	Count    int
}

type ForecastResult struct {
	Category          string
	History           []MonthlyCount // at most the last 6 months
	Projected         []float64      // next 3 periods, unclamped
	CurrentMonthCount int
	MeanRecent3       float64
	GrowthRatePct     float64
}

type Trend string

const (
	TrendGrowing    Trend = "crescente"
	TrendStable     Trend = "estavel"
	TrendDecreasing Trend = "decrescente"
)

// Priority is ordered: a higher value is more urgent.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityMedium:
		return "media"
	case PriorityHigh:
		return "alta"
	default:
		return "baixa"
	}
}

// Action is ordered: a higher value is a stronger purchasing action.
type Action int

const (
	ActionMonitor Action = iota
	ActionPlan
	ActionBuy
)

func (a Action) String() string {
	switch a {
	case ActionPlan:
		return "planejar"
	case ActionBuy:
		return "comprar"
	default:
		return "monitorar"
	}
}

type Recommendation struct {
	Action       Action
	Priority     Priority
	SuggestedQty int
	Message      string
	Reasons      []string
}

// CategoryForecast is the per-category output of the forecasting pipeline.
type CategoryForecast struct {
	Forecast       ForecastResult
	TotalQty       int
	StockQty       int
	UtilizationPct float64
	Trend          Trend
	Recommendation Recommendation
}

type SeasonalMonth struct {
	Month int // 1..12
	Label string
	Count int
}

type SeasonalProfile struct {
	Months       []SeasonalMonth
	Mean         float64
	Peak         int
	Trough       int
	PeakMonths   []string
	TroughMonths []string
	Insights     []string
}

type ROIClass string

const (
	ROIPositive ROIClass = "positive"
	ROINeutral  ROIClass = "neutral"
	ROINegative ROIClass = "negative"
)

type ROIRecord struct {
	AssetID          string
	Name             string
	Category         string
	AcquisitionValue float64
	ResidualValue    float64
	UsageDays        int
	MaintenanceCost  float64
	ROIPct           float64
	AgeYears         float64
	Class            ROIClass
}

type FinancialReport struct {
	Top                   []ROIRecord
	Bottom                []ROIRecord
	MeanROIPct            float64
	AssetsEvaluated       int
	TotalAcquisitionValue float64
	TotalResidualValue    float64
	TotalMaintenanceCost  float64
}

type UsageTier string

const (
	TierHigh   UsageTier = "alto"
	TierMedium UsageTier = "medio"
	TierLow    UsageTier = "baixo"
)

type UtilizationProfile struct {
	AssetID        string
	Name           string
	Category       string
	Status         AssetStatus
	TotalLoans     int
	RecentLoans90d int
	DaysOnLoan     int
	OccupancyPct   float64
	Tier           UsageTier
	Recommendation string
}

type UtilizationStats struct {
	Total            int
	WithLoans        int
	NeverUsed        int
	MeanOccupancyPct float64
	ByTier           map[UsageTier]int
}

type UtilizationReport struct {
	MostRequested []UtilizationProfile
	Underused     []UtilizationProfile
	Stats         UtilizationStats
}
