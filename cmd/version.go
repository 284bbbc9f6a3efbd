package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build metadata injected through ldflags
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

func userAgent() string {
	return "instantly-cli/" + version
}

// currentVersion parses the build version; ok is false for dev builds
func currentVersion() (semver.Version, bool) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// Needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		label := version
		if v, ok := currentVersion(); ok {
			label = "v" + v.String()
		}
		fmt.Fprintf(out, "instantly %s\n", label)
		fmt.Fprintf(out, "Built:   %s\n", buildTime)
		fmt.Fprintf(out, "Runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
