package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the Instantly API",
	Long:  `Test the API key against the Instantly API and display the current workspace.`,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to %s...\n", httpClient.BaseURL())

	ws, err := client.Workspaces.Current(cmd.Context())
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	fmt.Fprintln(out)
	return newFormatter(cmd).FormatWorkspace(ws)
}
