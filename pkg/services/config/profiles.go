package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/de-tools/equipment-insights/pkg/services/analytics"
)

// DefaultProfile is used when no profile is selected.
const DefaultProfile = "default"

// ProfileRegistry exposes named analytics threshold profiles.
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetSettings(ctx context.Context, profile string) (analytics.Settings, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// GetSettings overlays the profile's keys on the default settings.
func (r *iniRegistry) GetSettings(_ context.Context, profile string) (analytics.Settings, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return analytics.Settings{}, fmt.Errorf("profile %s not found", profile)
	}

	settings := analytics.DefaultSettings()
	if err := section.MapTo(&settings); err != nil {
		return analytics.Settings{}, fmt.Errorf("failed to parse profile %s: %w", profile, err)
	}
	if err := ValidateSettings(settings); err != nil {
		return analytics.Settings{}, fmt.Errorf("profile %s: %w", profile, err)
	}
	return settings, nil
}

// ResolveSettings returns the settings of profile in the file at path, or the
// defaults when path is empty.
func ResolveSettings(ctx context.Context, path, profile string) (analytics.Settings, error) {
	if path == "" {
		return analytics.DefaultSettings(), nil
	}
	if profile == "" {
		profile = DefaultProfile
	}

	registry, err := NewProfileRegistry(path)
	if err != nil {
		return analytics.Settings{}, err
	}
	return registry.GetSettings(ctx, profile)
}

func ValidateSettings(s analytics.Settings) error {
	switch {
	case s.MinDataPoints < 2:
		return fmt.Errorf("min_data_points must be at least 2, got %d", s.MinDataPoints)
	case s.ForecastPeriods < 1:
		return fmt.Errorf("forecast_periods must be positive, got %d", s.ForecastPeriods)
	case s.RankingSize < 1:
		return fmt.Errorf("ranking_size must be positive, got %d", s.RankingSize)
	case s.StockSeverePct > s.StockCriticalPct || s.StockCriticalPct > s.StockReducedPct:
		return fmt.Errorf("stock thresholds must be ordered: severe <= critical <= reduced")
	case s.GrowthModeratePct > s.GrowthHighPct:
		return fmt.Errorf("growth_moderate_pct must not exceed growth_high_pct")
	case s.UtilizationElevatedPct > s.UtilizationHighPct:
		return fmt.Errorf("utilization_elevated_pct must not exceed utilization_high_pct")
	case s.OccupancyVeryLowPct > s.OccupancyMediumPct || s.OccupancyMediumPct > s.OccupancyHighPct:
		return fmt.Errorf("occupancy thresholds must be ordered: very_low <= medium <= high")
	}
	return nil
}
