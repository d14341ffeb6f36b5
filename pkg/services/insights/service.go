package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/equipment-insights/pkg/adapters"
	"github.com/de-tools/equipment-insights/pkg/models/api"
	"github.com/de-tools/equipment-insights/pkg/services/analytics"
	"github.com/de-tools/equipment-insights/pkg/store/cache"
)

const (
	MsgInsufficientForecast    = "Insufficient data for predictive analysis. Register more loans."
	MsgInsufficientSeasonality = "Insufficient data for seasonality analysis."
	MsgNoFinancialData         = "No equipment with acquisition value registered."
	MsgNoEquipment             = "No equipment registered."
)

// Service runs the analyses over a snapshot fetched from the repository.
// Repository failures are returned as errors. Analysis failures are
// reported in the response body so that a dashboard keeps its other parts.
type Service interface {
	Forecast(ctx context.Context, filter Filter) (api.ForecastResponse, error)
	Seasonality(ctx context.Context, filter Filter) (api.SeasonalityResponse, error)
	Financial(ctx context.Context, filter Filter) (api.FinancialResponse, error)
	Utilization(ctx context.Context, filter Filter) (api.UtilizationResponse, error)
	Dashboard(ctx context.Context, filter Filter) (api.DashboardResponse, error)
}

type Option func(*service)

// WithClock overrides the reference time used for snapshots.
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		s.clock = clock
	}
}

// WithCache enables response caching keyed by the snapshot contents.
func WithCache(c cache.Cache) Option {
	return func(s *service) {
		s.cache = c
	}
}

type service struct {
	repo     Repository
	settings analytics.Settings
	clock    func() time.Time
	cache    cache.Cache
}

func NewService(repo Repository, settings analytics.Settings, opts ...Option) Service {
	s := &service{
		repo:     repo,
		settings: settings,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Forecast(ctx context.Context, filter Filter) (api.ForecastResponse, error) {
	snap, err := s.snapshot(ctx, filter)
	if err != nil {
		return api.ForecastResponse{}, err
	}
	return s.forecast(ctx, snap), nil
}

func (s *service) Seasonality(ctx context.Context, filter Filter) (api.SeasonalityResponse, error) {
	snap, err := s.snapshot(ctx, filter)
	if err != nil {
		return api.SeasonalityResponse{}, err
	}
	return s.seasonality(ctx, snap), nil
}

func (s *service) Financial(ctx context.Context, filter Filter) (api.FinancialResponse, error) {
	snap, err := s.snapshot(ctx, filter)
	if err != nil {
		return api.FinancialResponse{}, err
	}
	return s.financial(ctx, snap), nil
}

func (s *service) Utilization(ctx context.Context, filter Filter) (api.UtilizationResponse, error) {
	snap, err := s.snapshot(ctx, filter)
	if err != nil {
		return api.UtilizationResponse{}, err
	}
	return s.utilization(ctx, snap), nil
}

func (s *service) Dashboard(ctx context.Context, filter Filter) (api.DashboardResponse, error) {
	snap, err := s.snapshot(ctx, filter)
	if err != nil {
		return api.DashboardResponse{}, err
	}
	return api.DashboardResponse{
		Success:           true,
		Forecast:          s.forecast(ctx, snap),
		Seasonality:       s.seasonality(ctx, snap),
		Financial:         s.financial(ctx, snap),
		Utilization:       s.utilization(ctx, snap),
		AnalysisTimestamp: snap.TakenAt,
	}, nil
}

func (s *service) snapshot(ctx context.Context, filter Filter) (analytics.Snapshot, error) {
	logger := zerolog.Ctx(ctx)

	loans, err := s.repo.ListLoans(ctx, filter)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("failed to list loans: %w", err)
	}
	assets, err := s.repo.ListAssets(ctx, filter)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("failed to list assets: %w", err)
	}
	maintenance, err := s.repo.ListMaintenance(ctx, filter)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("failed to list maintenance: %w", err)
	}

	logger.Debug().
		Int("loans", len(loans)).
		Int("assets", len(assets)).
		Int("maintenance", len(maintenance)).
		Str("category", filter.Category).
		Msg("snapshot loaded")

	return analytics.Snapshot{
		Loans:       loans,
		Assets:      assets,
		Maintenance: maintenance,
		TakenAt:     s.clock().UTC().Truncate(time.Minute),
	}, nil
}

func (s *service) forecast(ctx context.Context, snap analytics.Snapshot) api.ForecastResponse {
	return cached(ctx, s, "forecast", snap, func() (api.ForecastResponse, bool) {
		resp := api.ForecastResponse{
			Forecasts:         []api.CategoryForecast{},
			HorizonDays:       s.settings.HorizonDays,
			AnalysisTimestamp: snap.TakenAt,
		}
		if msg := guard(ctx, "forecast", func() {
			resp.Forecasts = adapters.MapCategoryForecastsDomainToApi(analytics.BuildForecasts(snap, s.settings))
		}); msg != "" {
			resp.Forecasts = []api.CategoryForecast{}
			resp.Error = msg
			return resp, false
		}

		resp.Success = true
		if len(resp.Forecasts) == 0 {
			zerolog.Ctx(ctx).Info().Int("loans", len(snap.Loans)).Msg("not enough history to forecast")
			resp.Message = MsgInsufficientForecast
		}
		return resp, true
	})
}

func (s *service) seasonality(ctx context.Context, snap analytics.Snapshot) api.SeasonalityResponse {
	return cached(ctx, s, "seasonality", snap, func() (api.SeasonalityResponse, bool) {
		var (
			resp    api.SeasonalityResponse
			profErr error
		)
		if msg := guard(ctx, "seasonality", func() {
			profile, err := analytics.AnalyzeSeasonality(snap.Loans, s.settings)
			if err != nil {
				profErr = err
				return
			}
			resp = adapters.MapSeasonalProfileDomainToApi(profile)
		}); msg != "" {
			return emptySeasonality(false, "", msg), false
		}

		if profErr != nil {
			zerolog.Ctx(ctx).Info().Err(profErr).Msg("seasonality skipped")
			return emptySeasonality(true, MsgInsufficientSeasonality, ""), true
		}
		return resp, true
	})
}

func emptySeasonality(success bool, message, errMsg string) api.SeasonalityResponse {
	return api.SeasonalityResponse{
		Success:      success,
		Monthly:      []api.SeasonalMonth{},
		PeakMonths:   []string{},
		TroughMonths: []string{},
		Insights:     []string{},
		Message:      message,
		Error:        errMsg,
	}
}

func (s *service) financial(ctx context.Context, snap analytics.Snapshot) api.FinancialResponse {
	return cached(ctx, s, "financial", snap, func() (api.FinancialResponse, bool) {
		var resp api.FinancialResponse
		if msg := guard(ctx, "financial", func() {
			resp = adapters.MapFinancialReportDomainToApi(analytics.AnalyzeFinancials(snap, s.settings))
		}); msg != "" {
			return api.FinancialResponse{
				TopROI:    []api.ROIRecord{},
				BottomROI: []api.ROIRecord{},
				Error:     msg,
			}, false
		}

		if resp.Totals.AssetsEvaluated == 0 {
			zerolog.Ctx(ctx).Info().Int("assets", len(snap.Assets)).Msg("no assets eligible for ROI")
			resp.Message = MsgNoFinancialData
		}
		return resp, true
	})
}

func (s *service) utilization(ctx context.Context, snap analytics.Snapshot) api.UtilizationResponse {
	return cached(ctx, s, "utilization", snap, func() (api.UtilizationResponse, bool) {
		var resp api.UtilizationResponse
		if msg := guard(ctx, "utilization", func() {
			resp = adapters.MapUtilizationReportDomainToApi(analytics.ClassifyUtilization(snap, s.settings))
		}); msg != "" {
			return api.UtilizationResponse{
				MostRequested: []api.UtilizationProfile{},
				Underused:     []api.UtilizationProfile{},
				Error:         msg,
			}, false
		}

		if resp.Stats.Total == 0 {
			resp.Message = MsgNoEquipment
		}
		return resp, true
	})
}

// guard runs fn and converts a panic into an error message.
func guard(ctx context.Context, analysis string, fn func()) (errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			zerolog.Ctx(ctx).Error().
				Str("analysis", analysis).
				Interface("panic", r).
				Msg("analysis failed")
			errMsg = fmt.Sprintf("%s analysis failed: %v", analysis, r)
		}
	}()
	fn()
	return ""
}

// cached returns a stored response for the same analysis, snapshot and
// settings, or computes it and stores it when compute reports success.
func cached[T any](
	ctx context.Context,
	s *service,
	analysis string,
	snap analytics.Snapshot,
	compute func() (T, bool),
) T {
	if s.cache == nil {
		res, _ := compute()
		return res
	}

	logger := zerolog.Ctx(ctx)
	key, err := cache.Key(analysis, snap, s.settings)
	if err != nil {
		logger.Warn().Err(err).Str("analysis", analysis).Msg("failed to derive cache key")
		res, _ := compute()
		return res
	}

	if raw, ok := s.cache.Get(ctx, key); ok {
		var res T
		if err := json.Unmarshal([]byte(raw), &res); err == nil {
			logger.Debug().Str("analysis", analysis).Msg("cache hit")
			return res
		}
	}

	res, ok := compute()
	if !ok {
		return res
	}
	raw, err := json.Marshal(res)
	if err != nil {
		logger.Warn().Err(err).Str("analysis", analysis).Msg("failed to encode response for cache")
		return res
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		logger.Warn().Err(err).Str("analysis", analysis).Msg("failed to store response in cache")
	}
	return res
}
