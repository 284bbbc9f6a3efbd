package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/models"
)

var (
	verifyWait    bool
	verifyTimeout time.Duration
	verifyWebhook string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <email>",
	Short: "Verify deliverability of an email address",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVarP(&verifyWait, "wait", "w", false, "poll until the verdict is no longer pending")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "wait-timeout", 2*time.Minute, "give up waiting after this long")
	verifyCmd.Flags().StringVar(&verifyWebhook, "webhook", "", "URL notified when verification completes")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	result, err := client.EmailVerification.Verify(ctx, models.EmailVerificationCreate{
		Email:      args[0],
		WebhookURL: verifyWebhook,
	})
	if err != nil {
		return err
	}

	if verifyWait && result.Pending() {
		if result, err = waitForVerdict(ctx, args[0], result, 3*time.Second, verifyTimeout); err != nil {
			return err
		}
	}

	return newFormatter(cmd).FormatVerification(result)
}

// waitForVerdict polls the verification of email until it leaves pending.
func waitForVerdict(ctx context.Context, email string, result *models.EmailVerification, interval, timeout time.Duration) (*models.EmailVerification, error) {
	deadline := time.After(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var err error
	for result.Pending() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, fmt.Errorf("verification of %s still pending after %s", email, timeout)
		case <-ticker.C:
		}
		if result, err = client.EmailVerification.Status(ctx, email); err != nil {
			return nil, err
		}
		logger.Debug().Str("email", email).Str("status", result.Status).Msg("Polled verification status")
	}
	return result, nil
}
