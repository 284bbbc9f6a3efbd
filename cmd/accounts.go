package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/models"
)

var (
	accountsList   listFlags
	accountsSearch string
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List and inspect sending accounts",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sending accounts",
	Args:  cobra.NoArgs,
	RunE:  runAccountsList,
}

var accountsGetCmd = &cobra.Command{
	Use:   "get <email>",
	Short: "Show one sending account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsGet,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.AddCommand(accountsListCmd, accountsGetCmd)

	accountsList.register(accountsListCmd)
	accountsListCmd.Flags().StringVar(&accountsSearch, "search", "", "search by email")
}

func runAccountsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	accounts, err := client.Accounts.List(ctx, models.ListAccountsRequest{
		Limit:         accountsList.pageLimit(),
		StartingAfter: accountsList.after,
		Search:        accountsSearch,
	})
	if err != nil {
		return err
	}

	accounts, err = applyFilter(ctx, filters, accountsList.filter, accounts)
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatAccounts(accounts)
}

func runAccountsGet(cmd *cobra.Command, args []string) error {
	account, err := client.Accounts.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatAccounts([]models.Account{*account})
}
