package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"quake-bknd/internal/config"
	"quake-bknd/internal/logger"
	"quake-bknd/internal/models"
	"quake-bknd/internal/observability"
	"quake-bknd/internal/services"
	"quake-bknd/internal/usgs"

	"github.com/jonboulle/clockwork"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type LoadCmd struct {
	cfg  *config.Config
	logr *logger.Logger
}

func NewLoadCmd(cfg *config.Config, logr *logger.Logger) *LoadCmd {
	return &LoadCmd{cfg: cfg, logr: logr}
}

func (c *LoadCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Fetch one window of USGS events, classify them and insert them",
		RunE: func(cmd *cobra.Command, args []string) error {
			feedURL, err := cmd.Flags().GetString("feed-url")
			if err != nil {
				return fmt.Errorf("failed to get feed-url flag: %w", err)
			}
			start, err := cmd.Flags().GetString("start")
			if err != nil {
				return fmt.Errorf("failed to get start flag: %w", err)
			}
			end, err := cmd.Flags().GetString("end")
			if err != nil {
				return fmt.Errorf("failed to get end flag: %w", err)
			}
			minMag, err := cmd.Flags().GetFloat64("min-magnitude")
			if err != nil {
				return fmt.Errorf("failed to get min-magnitude flag: %w", err)
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			db, err := openStore(ctx, cmd, c.cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			client := usgs.NewClient(feedURL, c.cfg.FeedTimeout, c.logr.Logger)
			loader := services.NewLoaderService(
				db,
				client,
				clockwork.NewRealClock(),
				observability.NewMetrics(prometheus.NewRegistry()),
				c.logr.Logger,
			)

			result, err := loader.Load(ctx, usgs.Query{
				StartTime:    start,
				EndTime:      end,
				MinMagnitude: minMag,
				Limit:        limit,
			})
			if err != nil {
				return err
			}

			printLoadResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().String("feed-url", c.cfg.FeedURL, "USGS FDSN event query endpoint")
	cmd.Flags().String("start", c.cfg.FeedStartTime, "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", c.cfg.FeedEndTime, "End date (YYYY-MM-DD), empty for today in UTC")
	cmd.Flags().Float64("min-magnitude", c.cfg.FeedMinMagnitude, "Minimum magnitude requested from the feed")
	cmd.Flags().Int("limit", c.cfg.FeedLimit, "Maximum number of events requested")

	return cmd
}

func printLoadResult(w io.Writer, r *models.LoadResult) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"Run", "Window", "Fetched", "Inserted", "Skipped", "Duplicates", "Duration"})
	table.Append([]string{
		r.RunID,
		r.StartTime + " .. " + r.EndTime,
		fmt.Sprintf("%d", r.Fetched),
		fmt.Sprintf("%d", r.Inserted),
		fmt.Sprintf("%d", r.Skipped),
		fmt.Sprintf("%d", r.Duplicates),
		r.Duration.String(),
	})
	table.Render()
}

type SeedCmd struct {
	cfg  *config.Config
	logr *logger.Logger
}

func NewSeedCmd(cfg *config.Config, logr *logger.Logger) *SeedCmd {
	return &SeedCmd{cfg: cfg, logr: logr}
}

func (c *SeedCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and insert the reference regions and seismic zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := openStore(ctx, cmd, c.cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			loader := services.NewLoaderService(db, nil, clockwork.NewRealClock(), nil, c.logr.Logger)
			if err := loader.SeedLookupTables(ctx); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "lookup tables seeded")
			return err
		},
	}
}
