package cli

import (
	"fmt"
	"io"

	"quake-bknd/internal/config"
	"quake-bknd/internal/logger"
	"quake-bknd/internal/models"
	"quake-bknd/internal/services"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// maxReportTopN matches the API bound on top_n.
const maxReportTopN = 50

type ReportCmd struct {
	cfg  *config.Config
	logr *logger.Logger
}

func NewReportCmd(cfg *config.Config, logr *logger.Logger) *ReportCmd {
	return &ReportCmd{cfg: cfg, logr: logr}
}

func (c *ReportCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the most active regions and the regions above average activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			topN, err := cmd.Flags().GetInt("top-n")
			if err != nil {
				return fmt.Errorf("failed to get top-n flag: %w", err)
			}
			if topN < 1 || topN > maxReportTopN {
				return fmt.Errorf("--top-n must be between 1 and %d, got %d", maxReportTopN, topN)
			}

			ctx := cmd.Context()

			db, err := openStore(ctx, cmd, c.cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := services.NewQuakeService(db)

			active, err := svc.GetMostActiveRegions(ctx, topN)
			if err != nil {
				return err
			}
			above, err := svc.GetRegionsAboveAverageQuakes(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Most active regions")
			printActiveRegions(out, active)
			fmt.Fprintln(out, "Regions above average activity")
			printAboveAverage(out, above)
			return nil
		},
	}

	cmd.Flags().Int("top-n", 10, "Number of regions to list")

	return cmd
}

func printActiveRegions(w io.Writer, rows []models.ActiveRegion) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"ID", "Region", "Country", "Quakes"})
	for _, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", r.RegionID),
			r.RegionName,
			r.Country,
			fmt.Sprintf("%d", r.QuakeCount),
		})
	}
	table.Render()
}

func printAboveAverage(w io.Writer, rows []models.AboveAverageRegion) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"ID", "Region", "Quakes", "Mean"})
	for _, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", r.RegionID),
			r.RegionName,
			fmt.Sprintf("%d", r.QuakeCount),
			fmt.Sprintf("%.2f", r.AvgQuakes),
		})
	}
	table.Render()
}
