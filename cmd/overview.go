package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/instantly/models"
	"github.com/s0up4200/instantly/output"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Summarize the workspace",
	Long: `Fetch the workspace, sending accounts, campaigns, background jobs, block
list and campaign analytics concurrently and print totals. Counts cover the
first page (up to 100 records) of each resource.`,
	Args: cobra.NoArgs,
	RunE: runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	overview, err := fetchOverview(cmd.Context())
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatOverview(overview)
}

// fetchOverview runs every request in parallel; the first failure cancels the rest
func fetchOverview(ctx context.Context) (output.Overview, error) {
	var overview output.Overview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ws, err := client.Workspaces.Current(ctx)
		overview.Workspace = ws
		return err
	})
	g.Go(func() error {
		accounts, err := client.Accounts.List(ctx, models.ListAccountsRequest{})
		overview.Accounts = len(accounts)
		return err
	})
	g.Go(func() error {
		campaigns, err := client.Campaigns.List(ctx, models.ListCampaignsRequest{})
		overview.Campaigns = len(campaigns)
		return err
	})
	g.Go(func() error {
		jobs, err := client.BackgroundJobs.List(ctx, models.ListBackgroundJobsRequest{})
		for _, job := range jobs {
			if !job.Finished() {
				overview.ActiveJobs++
			}
		}
		return err
	})
	g.Go(func() error {
		entries, err := client.BlockList.List(ctx, models.ListBlockListEntriesRequest{})
		overview.BlockedEntries = len(entries)
		return err
	})
	g.Go(func() error {
		stats, err := client.Campaigns.AnalyticsOverview(ctx)
		overview.Analytics = stats
		return err
	})

	if err := g.Wait(); err != nil {
		return output.Overview{}, err
	}

	logger.Debug().
		Int("accounts", overview.Accounts).
		Int("campaigns", overview.Campaigns).
		Int("active_jobs", overview.ActiveJobs).
		Msg("Fetched overview")

	return overview, nil
}
