package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/models"
)

var (
	blockList    listFlags
	blockType    string
	blockAddType string
	blockSearch  string
	blockReason  string
	blockExpires string
	blockYes     bool
)

var blocklistCmd = &cobra.Command{
	Use:   "blocklist",
	Short: "Manage block list entries",
}

var blocklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List block list entries",
	Args:  cobra.NoArgs,
	RunE:  runBlocklistList,
}

var blocklistAddCmd = &cobra.Command{
	Use:   "add <email|domain>",
	Short: "Block an email address or domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocklistAdd,
}

var blocklistUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the reason or expiry of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocklistUpdate,
}

var blocklistRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an entry from the block list",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocklistRemove,
}

func init() {
	rootCmd.AddCommand(blocklistCmd)
	blocklistCmd.AddCommand(blocklistListCmd, blocklistAddCmd, blocklistUpdateCmd, blocklistRemoveCmd)

	blockList.register(blocklistListCmd)
	blocklistListCmd.Flags().StringVar(&blockType, "type", "", "only entries of this type (email or domain)")
	blocklistListCmd.Flags().StringVar(&blockSearch, "search", "", "search by value")

	blocklistAddCmd.Flags().StringVar(&blockAddType, "type", string(models.BlockListTypeEmail), "entry type (email or domain)")
	for _, c := range []*cobra.Command{blocklistAddCmd, blocklistUpdateCmd} {
		c.Flags().StringVar(&blockReason, "reason", "", "why the value is blocked")
		c.Flags().StringVar(&blockExpires, "expires", "", "expiry as YYYY-MM-DD or RFC 3339")
	}

	blocklistRemoveCmd.Flags().BoolVarP(&blockYes, "yes", "y", false, "skip confirmation prompt")
}

func runBlocklistList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	entries, err := client.BlockList.List(ctx, models.ListBlockListEntriesRequest{
		Type:          models.BlockListType(blockType),
		Limit:         blockList.pageLimit(),
		StartingAfter: blockList.after,
		Search:        blockSearch,
	})
	if err != nil {
		return err
	}

	entries, err = applyFilter(ctx, filters, blockList.filter, entries)
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatBlockList(entries)
}

func runBlocklistAdd(cmd *cobra.Command, args []string) error {
	expires, err := parseExpiry(blockExpires)
	if err != nil {
		return err
	}

	entry, err := client.BlockList.Create(cmd.Context(), models.BlockListEntryCreate{
		Type:      models.BlockListType(blockAddType),
		Value:     args[0],
		Reason:    blockReason,
		ExpiresAt: expires,
	})
	if err != nil {
		return err
	}

	logger.Info().Str("entry", entry.ID).Str("value", entry.Value).Msg("Block list entry added")
	return newFormatter(cmd).FormatBlockList([]models.BlockListEntry{*entry})
}

func runBlocklistUpdate(cmd *cobra.Command, args []string) error {
	var update models.BlockListEntryUpdate
	if cmd.Flags().Changed("reason") {
		update.Reason = &blockReason
	}
	if cmd.Flags().Changed("expires") {
		expires, err := parseExpiry(blockExpires)
		if err != nil {
			return err
		}
		update.ExpiresAt = expires
	}
	if update.Reason == nil && update.ExpiresAt == nil {
		return fmt.Errorf("nothing to update: pass --reason or --expires")
	}

	entry, err := client.BlockList.Update(cmd.Context(), args[0], update)
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatBlockList([]models.BlockListEntry{*entry})
}

func runBlocklistRemove(cmd *cobra.Command, args []string) error {
	ok, err := confirmCmd(cmd, blockYes, fmt.Sprintf("remove block list entry %s", args[0]))
	if err != nil || !ok {
		return err
	}

	if err := client.BlockList.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	return newFormatter(cmd).FormatAction("Block list entry "+args[0]+" removed", &models.ActionResult{})
}

// parseExpiry accepts the timestamp forms the API sends. Past instants are
// rejected.
func parseExpiry(s string) (*models.Timestamp, error) {
	if s == "" {
		return nil, nil
	}
	ts, err := models.ParseTimestamp(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --expires: %w", err)
	}
	if ts.Before(time.Now()) {
		return nil, fmt.Errorf("invalid --expires: %s is in the past", ts)
	}
	return &ts, nil
}
