package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/riftstats/predictor-api/internal/catalog"
	"github.com/riftstats/predictor-api/internal/config"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded harvest runs",
	Args:  cobra.NoArgs,
	RunE:  listRuns,
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No harvest runs recorded yet. Run 'harvester run' to start one.")
		return nil
	}

	t := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header("ID", "TIER", "PLAYERS", "MATCHES", "MODEL ROWS", "FINISHED")
	for _, r := range runs {
		t.Append(
			r.ID[:8],
			r.Tier,
			fmt.Sprintf("%d", r.Players),
			fmt.Sprintf("%d", r.Matches),
			fmt.Sprintf("%d", r.ModelRows),
			r.FinishedAt.Format(time.RFC3339),
		)
	}
	t.Render()
	return nil
}
