package terminal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/equipment-insights/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	source  *commands.Source
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Clock overrides the analysis time, mostly for tests.
	Clock func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{source: &commands.Source{}}
	cli.rootCmd = cli.newRootCmd(commands.Env{
		Source: cli.source,
		Output: opts.Output,
		Clock:  opts.Clock,
	})
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args for the next execution.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(env commands.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "insights",
		Short:         "IT equipment analytics and forecasting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(env.Output)
	cli.source.Bind(cmd)

	for _, a := range []commands.Analysis{
		commands.AnalysisForecast,
		commands.AnalysisSeasonality,
		commands.AnalysisFinancial,
		commands.AnalysisUtilization,
		commands.AnalysisDashboard,
	} {
		cmd.AddCommand(commands.NewAnalyzeCmd(env, a))
	}
	cmd.AddCommand(commands.NewExportCmd(env))
	cmd.AddCommand(commands.NewImportCmd(env))
	cmd.AddCommand(commands.NewProfilesCmd(env))

	return cmd
}
