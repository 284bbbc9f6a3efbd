package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/s0up4200/instantly/filter"
	"github.com/s0up4200/instantly/models"
)

// listFlags are shared by every list command
type listFlags struct {
	filter string
	limit  int
	after  string
}

func (l *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&l.filter, "filter", "f", "", "saved filter name or filter expression (e.g. 'email contains \"acme\"')")
	cmd.Flags().IntVarP(&l.limit, "limit", "l", 0, "maximum records to fetch (1-100, default 100)")
	cmd.Flags().StringVar(&l.after, "after", "", "cursor: return records after this ID")
}

func (l *listFlags) pageLimit() models.Limit {
	return models.Limit(l.limit)
}

// applyFilter narrows records with a saved filter or an ad hoc expression
func applyFilter[T any](ctx context.Context, m *filter.Manager, expression string, records []T) ([]T, error) {
	if strings.TrimSpace(expression) == "" {
		return records, nil
	}

	f, err := m.Resolve(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matched, err := filter.Apply(ctx, f, records)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("filter", f.Expression()).
		Int("fetched", len(records)).
		Int("matched", len(matched)).
		Msg("Applied filter")

	return matched, nil
}

// optionalUUID parses s, returning nil for an empty string
func optionalUUID(name, s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return &id, nil
}

// optionalRef is optionalUUID for query parameters
func optionalRef(name, s string) (*models.Ref, error) {
	id, err := optionalUUID(name, s)
	if err != nil || id == nil {
		return nil, err
	}
	return models.NewRef(*id), nil
}

// confirm asks a yes/no question. Without a terminal on stdin it refuses,
// so scripted runs must pass --yes.
func confirm(in io.Reader, out io.Writer, interactive bool, question string) (bool, error) {
	if !interactive {
		return false, fmt.Errorf("refusing to %s without confirmation; rerun with --yes", question)
	}

	fmt.Fprintf(out, "%s? [y/N]: ", capitalize(question))
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func confirmCmd(cmd *cobra.Command, skip bool, question string) (bool, error) {
	if skip {
		return true, nil
	}
	return confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), isTerminal(os.Stdin), question)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func plural(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
