package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/models"
)

var (
	tagsList   listFlags
	tagsSearch string
	tagsSpace  string
	tagsRemove bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List custom tags and tag resources",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom tags",
	Args:  cobra.NoArgs,
	RunE:  runTagsList,
}

var tagsToggleCmd = &cobra.Command{
	Use:   "toggle <tag-id> <resource-id>",
	Short: "Attach a tag to an account or campaign, or detach it with --remove",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagsToggle,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd, tagsToggleCmd)

	tagsList.register(tagsListCmd)
	tagsListCmd.Flags().StringVar(&tagsSearch, "search", "", "search by name")
	tagsListCmd.Flags().StringVar(&tagsSpace, "workspace", "", "only tags of this workspace")

	tagsToggleCmd.Flags().BoolVar(&tagsRemove, "remove", false, "detach instead of attach")
}

func runTagsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	workspace, err := optionalRef("workspace", tagsSpace)
	if err != nil {
		return err
	}

	tags, err := client.CustomTags.List(ctx, models.ListCustomTagsRequest{
		WorkspaceID:   workspace,
		Limit:         tagsList.pageLimit(),
		StartingAfter: tagsList.after,
		Search:        tagsSearch,
	})
	if err != nil {
		return err
	}

	tags, err = applyFilter(ctx, filters, tagsList.filter, tags)
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatCustomTags(tags)
}

func runTagsToggle(cmd *cobra.Command, args []string) error {
	resource, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid resource ID: %w", err)
	}

	tag, err := client.CustomTags.ToggleResource(cmd.Context(), args[0], models.ToggleResourceRequest{
		ResourceID: resource,
		Add:        !tagsRemove,
	})
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatCustomTags([]models.CustomTag{*tag})
}
