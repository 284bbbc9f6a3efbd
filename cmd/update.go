package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/config"
)

var (
	updateCheckOnly bool
	updateRepo      string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update instantly to the latest release",
	Long: `Check GitHub for a newer release and replace the running binary with it.
Development builds cannot be updated.`,
	Args: cobra.NoArgs,
	// The API key is not needed to update
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "only report whether an update is available")
	updateCmd.Flags().StringVar(&updateRepo, "repository", "", "release repository as owner/name")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logging := config.LoggingConfig{Level: "info", Color: true}
	repository := config.DefaultRepository
	// A usable config is optional here
	if loaded, err := config.Load(cfgFile); err == nil {
		logging = loaded.Logging
		repository = loaded.Update.Repository
	}
	if updateRepo != "" {
		repository = updateRepo
	}
	logger = setupLogger(logging)

	current, ok := currentVersion()
	if !ok {
		return fmt.Errorf("cannot update development build %q", version)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s on this platform", repository)
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("invalid release version %q: %w", latest.Version(), err)
	}
	if latestVersion.LTE(current) {
		fmt.Fprintf(out, "✓ Already up to date (v%s)\n", current)
		return nil
	}

	fmt.Fprintf(out, "New version available: v%s (current v%s)\n", latestVersion, current)
	if updateCheckOnly {
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().Str("asset", latest.AssetName).Str("path", exe).Msg("Downloading release")
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated to v%s\n", latestVersion)
	return nil
}
