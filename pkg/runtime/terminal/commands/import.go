package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	inventorysvc "github.com/de-tools/equipment-insights/pkg/services/inventory"
	"github.com/de-tools/equipment-insights/pkg/store/csvfile"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb/inventory"
)

type ImportCmd struct {
	env Env
}

func NewImportCmd(env Env) *cobra.Command {
	ic := &ImportCmd{env: env}
	return &cobra.Command{
		Use:   "import",
		Short: "Import equipment, loans and maintenance CSV files into the database",
		Args:  cobra.NoArgs,
		RunE:  ic.run,
	}
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	src := ic.env.Source
	if src.LoansPath == "" || src.AssetsPath == "" {
		return fmt.Errorf("--loans and --assets are required")
	}
	if err := src.resolve(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	ds, err := csvfile.NewLoader().LoadDataset(src.AssetsPath, src.LoansPath, src.MaintenancePath)
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: src.DbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := inventory.NewStore(db)
	if err != nil {
		return err
	}
	importer, err := inventorysvc.NewImporter(db, store)
	if err != nil {
		return err
	}

	summary, err := importer.Import(ctx, ds)
	if err != nil {
		return fmt.Errorf("import into %s: %w", src.DbPath, err)
	}

	_, err = fmt.Fprintf(ic.env.Output, "Imported %d equipment, %d loans and %d maintenance records into %s\n",
		summary.Equipment, summary.Loans, summary.Maintenance, src.DbPath)
	return err
}
