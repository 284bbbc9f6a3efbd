package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/models"
)

var (
	leadsList      listFlags
	leadsSearch    string
	leadsCampaign  string
	leadsListID    string
	leadsStatus    string
	leadsYes       bool
	leadCreate     models.LeadCreateRequest
	leadCampaign   string
	leadListID     string
	moveIDs        []string
	moveToCampaign string
	moveToList     string
	moveCopy       bool
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List, create and move leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads",
	Args:  cobra.NoArgs,
	RunE:  runLeadsList,
}

var leadsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one lead",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeadsGet,
}

var leadsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a lead",
	Args:  cobra.NoArgs,
	RunE:  runLeadsCreate,
}

var leadsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lead",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeadsDelete,
}

var leadsMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move or copy leads to another campaign or list",
	Long: `Move leads to another campaign or list. The move runs as a background
job; follow it with "instantly jobs get <id>".`,
	Args: cobra.NoArgs,
	RunE: runLeadsMove,
}

func init() {
	rootCmd.AddCommand(leadsCmd)
	leadsCmd.AddCommand(leadsListCmd, leadsGetCmd, leadsCreateCmd, leadsDeleteCmd, leadsMoveCmd)

	leadsList.register(leadsListCmd)
	leadsListCmd.Flags().StringVar(&leadsSearch, "search", "", "search by name or email")
	leadsListCmd.Flags().StringVar(&leadsCampaign, "campaign", "", "only leads in this campaign")
	leadsListCmd.Flags().StringVar(&leadsListID, "list", "", "only leads in this lead list")
	leadsListCmd.Flags().StringVar(&leadsStatus, "status", "", "server-side filter, e.g. FILTER_LEAD_INTERESTED")

	leadsCreateCmd.Flags().StringVar(&leadCreate.Email, "email", "", "lead email address")
	leadsCreateCmd.Flags().StringVar(&leadCreate.FirstName, "first-name", "", "first name")
	leadsCreateCmd.Flags().StringVar(&leadCreate.LastName, "last-name", "", "last name")
	leadsCreateCmd.Flags().StringVar(&leadCreate.CompanyName, "company", "", "company name")
	leadsCreateCmd.Flags().StringVar(&leadCampaign, "campaign", "", "campaign to add the lead to")
	leadsCreateCmd.Flags().StringVar(&leadListID, "list", "", "lead list to add the lead to")
	_ = leadsCreateCmd.MarkFlagRequired("email")

	leadsDeleteCmd.Flags().BoolVarP(&leadsYes, "yes", "y", false, "skip confirmation prompt")

	leadsMoveCmd.Flags().StringSliceVar(&moveIDs, "ids", nil, "lead IDs to move")
	leadsMoveCmd.Flags().StringVar(&moveToCampaign, "to-campaign", "", "destination campaign")
	leadsMoveCmd.Flags().StringVar(&moveToList, "to-list", "", "destination lead list")
	leadsMoveCmd.Flags().BoolVar(&moveCopy, "copy", false, "copy instead of move")
	_ = leadsMoveCmd.MarkFlagRequired("ids")
	leadsMoveCmd.MarkFlagsOneRequired("to-campaign", "to-list")
}

func runLeadsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	campaign, err := optionalUUID("campaign", leadsCampaign)
	if err != nil {
		return err
	}
	list, err := optionalUUID("list", leadsListID)
	if err != nil {
		return err
	}

	leads, err := client.Leads.List(ctx, models.ListLeadsRequest{
		Limit:         leadsList.pageLimit(),
		StartingAfter: leadsList.after,
		Search:        leadsSearch,
		Filter:        models.LeadFilter(leadsStatus),
		Campaign:      campaign,
		ListID:        list,
	})
	if err != nil {
		return err
	}

	leads, err = applyFilter(ctx, filters, leadsList.filter, leads)
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatLeads(leads)
}

func runLeadsGet(cmd *cobra.Command, args []string) error {
	lead, err := client.Leads.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatLeads([]models.Lead{*lead})
}

func runLeadsCreate(cmd *cobra.Command, args []string) error {
	var err error
	req := leadCreate
	if req.Campaign, err = optionalUUID("campaign", leadCampaign); err != nil {
		return err
	}
	if req.ListID, err = optionalUUID("list", leadListID); err != nil {
		return err
	}

	lead, err := client.Leads.Create(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.Info().Str("lead", lead.ID).Str("email", lead.Email).Msg("Lead created")
	return newFormatter(cmd).FormatLeads([]models.Lead{*lead})
}

func runLeadsDelete(cmd *cobra.Command, args []string) error {
	ok, err := confirmCmd(cmd, leadsYes, fmt.Sprintf("delete lead %s", args[0]))
	if err != nil || !ok {
		return err
	}

	if err := client.Leads.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	return newFormatter(cmd).FormatAction("Lead "+args[0]+" deleted", &models.ActionResult{})
}

func runLeadsMove(cmd *cobra.Command, args []string) error {
	var err error
	req := models.LeadMoveRequest{IDs: moveIDs}
	if req.ToCampaignID, err = optionalUUID("to-campaign", moveToCampaign); err != nil {
		return err
	}
	if req.ToListID, err = optionalUUID("to-list", moveToList); err != nil {
		return err
	}
	if moveCopy {
		req.CopyLeads = models.Ptr(true)
	}

	job, err := client.Leads.Move(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.Info().Str("job", job.ID).Int("leads", len(moveIDs)).Msg("Lead move started")
	return newFormatter(cmd).FormatBackgroundJobs([]models.BackgroundJob{*job})
}
