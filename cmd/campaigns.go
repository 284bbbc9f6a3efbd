package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/models"
)

var (
	campaignsList   listFlags
	campaignsSearch string
	campaignsStatus string
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List, inspect and control campaigns",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	Args:  cobra.NoArgs,
	RunE:  runCampaignsList,
}

var campaignsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaignsGet,
}

var campaignsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Start or resume sending",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaignsAction,
}

var campaignsPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Stop sending until activated again",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaignsAction,
}

var campaignsAnalyticsCmd = &cobra.Command{
	Use:   "analytics [id]",
	Short: "Show campaign analytics",
	Long:  `Show lifetime counters of one campaign, or totals across all campaigns when no ID is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCampaignsAnalytics,
}

func init() {
	rootCmd.AddCommand(campaignsCmd)
	campaignsCmd.AddCommand(campaignsListCmd, campaignsGetCmd, campaignsActivateCmd, campaignsPauseCmd, campaignsAnalyticsCmd)

	campaignsList.register(campaignsListCmd)
	campaignsListCmd.Flags().StringVar(&campaignsSearch, "search", "", "search by name")
	campaignsListCmd.Flags().StringVar(&campaignsStatus, "status", "", "only campaigns in this status")
}

func runCampaignsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	campaigns, err := client.Campaigns.List(ctx, models.ListCampaignsRequest{
		Limit:         campaignsList.pageLimit(),
		StartingAfter: campaignsList.after,
		Search:        campaignsSearch,
		Status:        models.CampaignStatus(campaignsStatus),
	})
	if err != nil {
		return err
	}

	campaigns, err = applyFilter(ctx, filters, campaignsList.filter, campaigns)
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatCampaigns(campaigns)
}

func runCampaignsGet(cmd *cobra.Command, args []string) error {
	campaign, err := client.Campaigns.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatCampaigns([]models.Campaign{*campaign})
}

func runCampaignsAction(cmd *cobra.Command, args []string) error {
	var (
		campaign *models.Campaign
		err      error
	)
	switch cmd.Name() {
	case "activate":
		campaign, err = client.Campaigns.Activate(cmd.Context(), args[0])
	case "pause":
		campaign, err = client.Campaigns.Pause(cmd.Context(), args[0])
	default:
		return fmt.Errorf("unknown campaign action: %s", cmd.Name())
	}
	if err != nil {
		return err
	}

	logger.Info().Str("campaign", campaign.ID).Str("status", string(campaign.Status)).Msgf("Campaign %s", cmd.Name())
	return newFormatter(cmd).FormatCampaigns([]models.Campaign{*campaign})
}

func runCampaignsAnalytics(cmd *cobra.Command, args []string) error {
	var (
		stats *models.CampaignAnalytics
		err   error
	)
	if len(args) == 1 {
		stats, err = client.Campaigns.Analytics(cmd.Context(), args[0])
	} else {
		stats, err = client.Campaigns.AnalyticsOverview(cmd.Context())
	}
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatCampaignAnalytics([]models.CampaignAnalytics{*stats})
}
