package api

type ROIRecord struct {
	AssetID          string  `json:"asset_id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	AcquisitionValue float64 `json:"acquisition_value"`
	ResidualValue    float64 `json:"residual_value"`
	UsageDays        int     `json:"usage_days"`
	MaintenanceCost  float64 `json:"maintenance_cost"`
	ROIPct           float64 `json:"roi_pct"`
	AgeYears         float64 `json:"age_years"`
	Class            string  `json:"class"`
}

type FleetTotals struct {
	AssetsEvaluated  int     `json:"assets_evaluated"`
	AcquisitionValue float64 `json:"acquisition_value"`
	ResidualValue    float64 `json:"residual_value"`
	MaintenanceCost  float64 `json:"maintenance_cost"`
}

type FinancialResponse struct {
	Success    bool        `json:"success"`
	TopROI     []ROIRecord `json:"top_roi"`
	BottomROI  []ROIRecord `json:"bottom_roi"`
	MeanROIPct float64     `json:"mean_roi_pct"`
	Totals     FleetTotals `json:"totals"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
}
