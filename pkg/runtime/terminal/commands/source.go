package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/equipment-insights/pkg/services/analytics"
	"github.com/de-tools/equipment-insights/pkg/services/config"
	"github.com/de-tools/equipment-insights/pkg/services/insights"
	"github.com/de-tools/equipment-insights/pkg/store/csvfile"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb/inventory"
	"github.com/de-tools/equipment-insights/pkg/store/memory"
)

// Source holds the flags that select where inventory data and thresholds come from.
type Source struct {
	ConfigPath      string
	DbPath          string
	LoansPath       string
	AssetsPath      string
	MaintenancePath string
	ProfilesPath    string
	Profile         string
	Category        string
	From            string
	To              string
}

// Bind registers the source flags as persistent flags of cmd.
func (s *Source) Bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&s.ConfigPath, "config", "", "Path to the application config file")
	flags.StringVar(&s.DbPath, "db", "", "Path to the DuckDB inventory database")
	flags.StringVar(&s.LoansPath, "loans", "", "Loans CSV file (used instead of --db)")
	flags.StringVar(&s.AssetsPath, "assets", "", "Equipment CSV file (used instead of --db)")
	flags.StringVar(&s.MaintenancePath, "maintenance", "", "Maintenance CSV file")
	flags.StringVar(&s.ProfilesPath, "profiles", "", "Path to the analytics profiles ini file")
	flags.StringVar(&s.Profile, "profile", "", "Analytics profile name")
	flags.StringVar(&s.Category, "category", "", "Restrict the analysis to one equipment category")
	flags.StringVar(&s.From, "from", "", "Only consider records from this date (YYYY-MM-DD)")
	flags.StringVar(&s.To, "to", "", "Only consider records up to this date (YYYY-MM-DD)")
}

// resolve fills unset values from the application config.
func (s *Source) resolve() error {
	cfg, err := config.LoadConfig(s.ConfigPath)
	if err != nil {
		return err
	}
	if s.DbPath == "" {
		s.DbPath = cfg.Store.DbPath
	}
	if s.ProfilesPath == "" {
		s.ProfilesPath = cfg.Analytics.ProfilesPath
	}
	if s.Profile == "" {
		s.Profile = cfg.Analytics.Profile
	}
	return nil
}

func (s *Source) usesCSV() bool {
	return s.LoansPath != "" || s.AssetsPath != ""
}

// Settings returns the thresholds of the selected profile.
func (s *Source) Settings(ctx context.Context) (analytics.Settings, error) {
	if err := s.resolve(); err != nil {
		return analytics.Settings{}, err
	}
	return config.ResolveSettings(ctx, s.ProfilesPath, s.Profile)
}

// Filter returns the record filter selected by the flags.
func (s *Source) Filter() (insights.Filter, error) {
	filter := insights.Filter{Category: s.Category}

	var err error
	if filter.From, err = insights.ParseFrom(s.From); err != nil {
		return filter, fmt.Errorf("invalid --from: %w", err)
	}
	if filter.To, err = insights.ParseTo(s.To); err != nil {
		return filter, fmt.Errorf("invalid --to: %w", err)
	}
	return filter, nil
}

// Repository opens the selected data source. The returned function releases it.
func (s *Source) Repository(ctx context.Context) (insights.Repository, func() error, error) {
	if err := s.resolve(); err != nil {
		return nil, nil, err
	}

	if s.usesCSV() {
		if s.LoansPath == "" || s.AssetsPath == "" {
			return nil, nil, fmt.Errorf("--loans and --assets must be used together")
		}
		ds, err := csvfile.NewLoader().LoadDataset(s.AssetsPath, s.LoansPath, s.MaintenancePath)
		if err != nil {
			return nil, nil, err
		}
		loans, assets, maintenance, err := ds.Records()
		if err != nil {
			return nil, nil, err
		}
		return memory.NewRepository(loans, assets, maintenance), func() error { return nil }, nil
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: s.DbPath})
	if err != nil {
		return nil, nil, err
	}
	store, err := inventory.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return insights.NewStoreRepository(store), db.Close, nil
}
