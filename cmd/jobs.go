package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/models"
)

var (
	jobsList        listFlags
	jobsStatus      string
	jobsType        string
	jobsWait        bool
	jobsInterval    time.Duration
	jobsWaitTimeout time.Duration
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Follow background jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List background jobs",
	Args:  cobra.NoArgs,
	RunE:  runJobsList,
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one background job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsGet,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd, jobsGetCmd)

	jobsList.register(jobsListCmd)
	jobsListCmd.Flags().StringVar(&jobsStatus, "status", "", "only jobs in this status")
	jobsListCmd.Flags().StringVar(&jobsType, "type", "", "only jobs of this type (move-leads, import-leads, export-leads)")

	jobsGetCmd.Flags().BoolVarP(&jobsWait, "wait", "w", false, "poll until the job finishes")
	jobsGetCmd.Flags().DurationVar(&jobsInterval, "interval", 5*time.Second, "poll interval with --wait")
	jobsGetCmd.Flags().DurationVar(&jobsWaitTimeout, "wait-timeout", 10*time.Minute, "give up waiting after this long")
}

func runJobsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jobs, err := client.BackgroundJobs.List(ctx, models.ListBackgroundJobsRequest{
		Status:        jobsStatus,
		Type:          models.JobType(jobsType),
		Limit:         jobsList.pageLimit(),
		StartingAfter: jobsList.after,
	})
	if err != nil {
		return err
	}

	jobs, err = applyFilter(ctx, filters, jobsList.filter, jobs)
	if err != nil {
		return err
	}
	return newFormatter(cmd).FormatBackgroundJobs(jobs)
}

func runJobsGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	job, err := client.BackgroundJobs.Get(ctx, args[0])
	if err != nil {
		return err
	}

	if jobsWait {
		if job, err = waitForJob(ctx, args[0], job, jobsInterval, jobsWaitTimeout); err != nil {
			return err
		}
	}

	return newFormatter(cmd).FormatBackgroundJobs([]models.BackgroundJob{*job})
}

// waitForJob polls job id until it finishes or timeout passes.
func waitForJob(ctx context.Context, id string, job *models.BackgroundJob, interval, timeout time.Duration) (*models.BackgroundJob, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid --interval: %s", interval)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid --wait-timeout: %s", timeout)
	}

	deadline := time.After(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var err error
	for !job.Finished() {
		logger.Info().Str("job", id).Str("status", string(job.Status)).Int("progress", job.Progress).Msg("Waiting for job")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, fmt.Errorf("job %s still %s after %s", id, job.Status, timeout)
		case <-ticker.C:
		}
		if job, err = client.BackgroundJobs.Get(ctx, id); err != nil {
			return nil, err
		}
	}
	return job, nil
}
