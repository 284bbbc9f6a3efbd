package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/instantly/api"
	"github.com/s0up4200/instantly/filter"
	"github.com/s0up4200/instantly/models"
	"github.com/s0up4200/instantly/transport"
)

// routeTransport answers GETs from a path-keyed table
type routeTransport struct {
	routes map[string]string
	fail   map[string]error
}

func (r *routeTransport) Get(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
	if err, ok := r.fail[path]; ok {
		return nil, err
	}
	body, ok := r.routes[path]
	if !ok {
		return nil, &transport.HTTPError{StatusCode: 404, Body: "not found"}
	}
	return json.RawMessage(body), nil
}

func (r *routeTransport) Post(context.Context, string, any) (json.RawMessage, error) {
	return nil, errors.New("unexpected POST")
}

func (r *routeTransport) Put(context.Context, string, any) (json.RawMessage, error) {
	return nil, errors.New("unexpected PUT")
}

func (r *routeTransport) Patch(context.Context, string, any) (json.RawMessage, error) {
	return nil, errors.New("unexpected PATCH")
}

func (r *routeTransport) Delete(context.Context, string) error {
	return errors.New("unexpected DELETE")
}

const testWorkspace = "0196eed7-b516-7082-bd55-11a2cf42ba3f"

func jobJSON(id, status string, progress int) string {
	return `{"id":"` + id + `","created_at":"2024-01-01T00:00:00Z","workspace_id":"` + testWorkspace +
		`","type":"move-leads","progress":` + strconv.Itoa(progress) + `,"status":"` + status + `"}`
}

func overviewRoutes() map[string]string {
	job := jobJSON
	return map[string]string{
		"/workspaces/current": `{"id":"` + testWorkspace + `","name":"Acme"}`,
		"/accounts": `{"items":[{"email":"a@acme.io","timestamp_created":"2024-01-01T00:00:00Z"},
			{"email":"b@acme.io","timestamp_created":"2024-01-01T00:00:00Z"}]}`,
		"/campaigns":                    `{"items":[{"id":"c1","name":"Q3","created_at":"2024-01-01T00:00:00Z"}]}`,
		"/background-jobs":              `{"items":[` + job("j1", "success", 100) + `,` + job("j2", "in-progress", 40) + `,` +
			job("j3", "pending", 0) + `,` + job("j4", "completed", 100) + `,` + job("j5", "queued", 0) + `]}`,
		"/block-lists-entries":          `{"items":[]}`,
		"/campaigns/analytics/overview": `{"emails_sent_count":40,"reply_count":2}`,
	}
}

func TestFetchOverview(t *testing.T) {
	logger = zerolog.Nop()
	client = api.New(&routeTransport{routes: overviewRoutes()})

	overview, err := fetchOverview(context.Background())
	require.NoError(t, err)

	require.NotNil(t, overview.Workspace)
	assert.Equal(t, "Acme", overview.Workspace.Name)
	assert.Equal(t, 2, overview.Accounts)
	assert.Equal(t, 1, overview.Campaigns)
	assert.Equal(t, 3, overview.ActiveJobs, "unknown status at full progress counts as finished")
	assert.Zero(t, overview.BlockedEntries)
	require.NotNil(t, overview.Analytics)
	assert.Equal(t, 40, overview.Analytics.EmailsSentCount)
}

func TestFetchOverviewFailure(t *testing.T) {
	logger = zerolog.Nop()
	denied := &transport.HTTPError{StatusCode: 401, Body: "unauthorized"}
	client = api.New(&routeTransport{
		routes: overviewRoutes(),
		fail:   map[string]error{"/campaigns": denied},
	})

	_, err := fetchOverview(context.Background())
	httpErr, ok := transport.AsHTTPError(err)
	require.True(t, ok, "got %v", err)
	assert.True(t, httpErr.IsUnauthorized())
}

func TestWaitForJob(t *testing.T) {
	logger = zerolog.Nop()
	decode := func(body string) *models.BackgroundJob {
		var job models.BackgroundJob
		require.NoError(t, json.Unmarshal([]byte(body), &job))
		return &job
	}

	t.Run("unknown status at full progress", func(t *testing.T) {
		client = api.New(&routeTransport{routes: map[string]string{
			"/background-jobs/j1": jobJSON("j1", "completed", 100),
		}})
		job, err := waitForJob(context.Background(), "j1", decode(jobJSON("j1", "in-progress", 50)), time.Millisecond, time.Second)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatus("completed"), job.Status)
	})

	t.Run("already finished", func(t *testing.T) {
		client = api.New(&routeTransport{})
		job, err := waitForJob(context.Background(), "j1", decode(jobJSON("j1", "failed", 30)), time.Millisecond, time.Second)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusFailed, job.Status)
	})

	t.Run("timeout", func(t *testing.T) {
		client = api.New(&routeTransport{routes: map[string]string{
			"/background-jobs/j1": jobJSON("j1", "in-progress", 50),
		}})
		_, err := waitForJob(context.Background(), "j1", decode(jobJSON("j1", "in-progress", 50)), time.Millisecond, 20*time.Millisecond)
		assert.ErrorContains(t, err, "job j1 still in-progress after 20ms")
	})

	t.Run("invalid interval", func(t *testing.T) {
		_, err := waitForJob(context.Background(), "j1", decode(jobJSON("j1", "pending", 0)), 0, time.Second)
		assert.ErrorContains(t, err, "invalid --interval")
	})
}

func TestWaitForVerdict(t *testing.T) {
	logger = zerolog.Nop()
	pending := &models.EmailVerification{Email: "jane@acme.io", Status: "pending"}

	client = api.New(&routeTransport{routes: map[string]string{
		"/email-verification/jane@acme.io": `{"email":"jane@acme.io","verification_status":"valid"}`,
	}})
	result, err := waitForVerdict(context.Background(), "jane@acme.io", pending, time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "valid", result.Status)
	assert.False(t, result.Pending())

	client = api.New(&routeTransport{routes: map[string]string{
		"/email-verification/jane@acme.io": `{"email":"jane@acme.io","status":"pending"}`,
	}})
	_, err = waitForVerdict(context.Background(), "jane@acme.io", pending, time.Millisecond, 20*time.Millisecond)
	assert.ErrorContains(t, err, "still pending after 20ms")
}

func TestApplyFilter(t *testing.T) {
	logger = zerolog.Nop()
	m := filter.NewManager()
	require.NoError(t, m.RegisterFilter("acme", `domain(email) == "acme.io"`))

	accounts := []models.Account{{Email: "a@acme.io"}, {Email: "b@other.io"}, {Email: "c@acme.io"}}

	got, err := applyFilter(context.Background(), m, "", accounts)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = applyFilter(context.Background(), m, "acme", accounts)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = applyFilter(context.Background(), m, `email startsWith "b"`, accounts)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b@other.io", got[0].Email)

	_, err = applyFilter(context.Background(), m, `email ==`, accounts)
	assert.ErrorContains(t, err, "invalid filter expression")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"full yes", " YES \n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompt bytes.Buffer
			ok, err := confirm(strings.NewReader(tt.input), &prompt, true, "delete lead l1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, "Delete lead l1? [y/N]: ", prompt.String())
		})
	}

	_, err := confirm(strings.NewReader("y\n"), &bytes.Buffer{}, false, "delete lead l1")
	assert.ErrorContains(t, err, "--yes")
}

func TestParseExpiry(t *testing.T) {
	ts, err := parseExpiry("")
	require.NoError(t, err)
	assert.Nil(t, ts)

	future := time.Now().AddDate(1, 0, 0).UTC().Format(time.DateOnly)
	ts, err = parseExpiry(future)
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, future, ts.Format(time.DateOnly))

	_, err = parseExpiry("2001-01-01")
	assert.ErrorContains(t, err, "in the past")

	_, err = parseExpiry("next week")
	assert.Error(t, err)
}

func TestOptionalUUID(t *testing.T) {
	id, err := optionalUUID("campaign", "")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = optionalUUID("campaign", testWorkspace)
	require.NoError(t, err)
	assert.Equal(t, testWorkspace, id.String())

	_, err = optionalUUID("campaign", "camp_1")
	assert.ErrorContains(t, err, "--campaign")

	ref, err := optionalRef("workspace", testWorkspace)
	require.NoError(t, err)
	assert.Equal(t, testWorkspace, ref.String())
}

func TestCurrentVersion(t *testing.T) {
	saved := version
	t.Cleanup(func() { version = saved })

	version = "dev"
	_, ok := currentVersion()
	assert.False(t, ok)

	version = "v1.4.2"
	v, ok := currentVersion()
	require.True(t, ok)
	assert.Equal(t, "1.4.2", v.String())
	assert.Equal(t, "instantly-cli/v1.4.2", userAgent())
}
