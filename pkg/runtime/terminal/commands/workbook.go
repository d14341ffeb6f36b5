package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	workbook "github.com/de-tools/equipment-insights/pkg/runtime/export"
)

type ExportCmd struct {
	env     Env
	outPath string
}

func NewExportCmd(env Env) *cobra.Command {
	ec := &ExportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every analysis to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.outPath, "out", "", "Path of the .xlsx file to write")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	filter, err := ec.env.Source.Filter()
	if err != nil {
		return err
	}
	svc, closeFn, err := ec.env.service(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := svc.Dashboard(ctx, filter)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	if err := workbook.SaveWorkbook(ec.outPath, resp); err != nil {
		return err
	}

	_, err = fmt.Fprintf(ec.env.Output, "Report written to %s\n", ec.outPath)
	return err
}
