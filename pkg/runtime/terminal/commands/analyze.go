package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/equipment-insights/pkg/adapters"
	"github.com/de-tools/equipment-insights/pkg/models/domain"
	"github.com/de-tools/equipment-insights/pkg/runtime/terminal/export"
	"github.com/de-tools/equipment-insights/pkg/services/insights"
)

const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
)

// Analysis names one of the analyses exposed as a sub-command.
type Analysis string

const (
	AnalysisForecast    Analysis = "forecast"
	AnalysisSeasonality Analysis = "seasonality"
	AnalysisFinancial   Analysis = "financial"
	AnalysisUtilization Analysis = "utilization"
	AnalysisDashboard   Analysis = "dashboard"
)

var analysisDescriptions = map[Analysis]string{
	AnalysisForecast:    "Forecast demand per category and recommend purchases",
	AnalysisSeasonality: "Show monthly loan seasonality",
	AnalysisFinancial:   "Rank equipment by return on investment",
	AnalysisUtilization: "Classify equipment by occupancy",
	AnalysisDashboard:   "Run every analysis over the same snapshot",
}

// Env carries what every command needs besides its own flags.
type Env struct {
	Source *Source
	Output io.Writer
	Clock  func() time.Time
}

func (e Env) service(ctx context.Context) (insights.Service, func() error, error) {
	settings, err := e.Source.Settings(ctx)
	if err != nil {
		return nil, nil, err
	}
	repo, closeFn, err := e.Source.Repository(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts := []insights.Option{}
	if e.Clock != nil {
		opts = append(opts, insights.WithClock(e.Clock))
	}
	return insights.NewService(repo, settings, opts...), closeFn, nil
}

type AnalyzeCmd struct {
	env      Env
	analysis Analysis
	format   string
}

func NewAnalyzeCmd(env Env, analysis Analysis) *cobra.Command {
	ac := &AnalyzeCmd{env: env, analysis: analysis}
	cmd := &cobra.Command{
		Use:   string(analysis),
		Short: analysisDescriptions[analysis],
		Args:  cobra.NoArgs,
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.format, "format", FormatTable, "Output format: table, text or json")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	reporter, err := ac.reporter()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	filter, err := ac.env.Source.Filter()
	if err != nil {
		return err
	}
	svc, closeFn, err := ac.env.service(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	var (
		resp    any
		reports []domain.Report
	)
	switch ac.analysis {
	case AnalysisForecast:
		r, err := svc.Forecast(ctx, filter)
		if err != nil {
			return fmt.Errorf("forecast: %w", err)
		}
		resp, reports = r, []domain.Report{adapters.MapForecastResponseToReport(r)}
	case AnalysisSeasonality:
		r, err := svc.Seasonality(ctx, filter)
		if err != nil {
			return fmt.Errorf("seasonality: %w", err)
		}
		resp, reports = r, []domain.Report{adapters.MapSeasonalityResponseToReport(r, ac.now())}
	case AnalysisFinancial:
		r, err := svc.Financial(ctx, filter)
		if err != nil {
			return fmt.Errorf("financial: %w", err)
		}
		resp, reports = r, []domain.Report{adapters.MapFinancialResponseToReport(r, ac.now())}
	case AnalysisUtilization:
		r, err := svc.Utilization(ctx, filter)
		if err != nil {
			return fmt.Errorf("utilization: %w", err)
		}
		resp, reports = r, []domain.Report{adapters.MapUtilizationResponseToReport(r, ac.now())}
	case AnalysisDashboard:
		r, err := svc.Dashboard(ctx, filter)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		resp, reports = r, adapters.MapDashboardResponseToReports(r)
	default:
		return fmt.Errorf("unknown analysis %q", ac.analysis)
	}

	if reporter == nil {
		enc := json.NewEncoder(ac.env.Output)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	for i := range reports {
		if err := reporter.Handle(&reports[i]); err != nil {
			return err
		}
	}
	return nil
}

// reporter returns nil for JSON output.
func (ac *AnalyzeCmd) reporter() (export.Handler, error) {
	switch ac.format {
	case FormatTable:
		return export.NewReporter(ac.env.Output), nil
	case FormatText:
		return export.NewListReporter(ac.env.Output), nil
	case FormatJSON:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (expected table, text or json)", ac.format)
	}
}

func (ac *AnalyzeCmd) now() time.Time {
	if ac.env.Clock != nil {
		return ac.env.Clock().UTC()
	}
	return time.Now().UTC()
}
