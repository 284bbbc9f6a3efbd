package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/api"
	"github.com/s0up4200/instantly/config"
	"github.com/s0up4200/instantly/filter"
	"github.com/s0up4200/instantly/output"
	"github.com/s0up4200/instantly/transport"
)

var (
	cfgFile    string
	outputFlag string
	cfg        *config.Config
	logger     zerolog.Logger
	httpClient *transport.Client
	client     *api.Client
	filters    *filter.Manager
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "instantly",
	Short: "A command line client for the Instantly.ai API",
	Long: `instantly is a CLI for the Instantly.ai v2 API. It lists and manages
accounts, campaigns, leads, block list entries and tags, verifies email
addresses and follows background jobs.

List commands accept --filter with either a saved filter name from the
config file or an expression evaluated against each record, for example

  instantly leads list --filter 'email endsWith "@acme.io" and email_open_count > 2'`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if httpClient != nil {
			httpClient.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table or json")
}

// initializeApp loads configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		if outputFlag != output.FormatTable && outputFlag != output.FormatJSON {
			return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFlag)
		}
		cfg.Output.Format = outputFlag
	}

	logger = setupLogger(cfg.Logging)

	httpClient, err = transport.New(cfg.Transport(), logger, transport.WithUserAgent(userAgent()))
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}
	client = api.New(httpClient)

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid saved filter: %w", err)
	}
	if names := filters.ListFilters(); len(names) > 0 {
		logger.Debug().Strs("filters", names).Msg("Registered saved filters")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(writer).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newFormatter(cmd *cobra.Command) *output.Formatter {
	return output.NewFormatter(cmd.OutOrStdout(), cfg.Output.Format)
}
