package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/instantly/models"
)

func TestNewFormatterFallsBackToTable(t *testing.T) {
	assert.False(t, NewFormatter(&bytes.Buffer{}, "yaml").JSON())
	assert.True(t, NewFormatter(&bytes.Buffer{}, FormatJSON).JSON())
}

func TestFormatLeadsTable(t *testing.T) {
	created := models.NewTimestamp(time.Date(2024, 3, 1, 23, 0, 0, 0, time.FixedZone("", -2*3600)))
	leads := []models.Lead{
		{ID: "l1", Email: "jane@acme.io", FirstName: "Jane", LastName: "Smith", Status: models.Ptr(models.LeadStatusActive), CreatedAt: &created},
		{ID: "l2", Email: "bob@example.com"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatTable).FormatLeads(leads))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Regexp(t, `^ID\s+EMAIL\s+NAME`, lines[0])
	assert.Contains(t, lines[1], "Jane Smith")
	assert.Contains(t, lines[1], "2024-03-02")
	assert.Contains(t, lines[2], "bob@example.com")
	assert.Equal(t, "2 leads", lines[4])
}

func TestFormatEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatTable).FormatCampaigns(nil))
	assert.Equal(t, "No campaigns found\n", buf.String())

	buf.Reset()
	require.NoError(t, NewFormatter(&buf, FormatJSON).FormatCampaigns(nil))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestFormatJSON(t *testing.T) {
	ws := uuid.MustParse("0196eed7-b516-7082-bd55-11a2cf42ba3f")
	entries := []models.BlockListEntry{{
		Record:      models.Record{ID: "bl_1", CreatedAt: models.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
		WorkspaceID: ws,
		Type:        models.BlockListTypeDomain,
		Value:       "spam.example",
	}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatJSON).FormatBlockList(entries))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "spam.example", decoded[0]["value"])
	assert.Equal(t, "2024-01-01T00:00:00Z", decoded[0]["created_at"])
	assert.Equal(t, ws.String(), decoded[0]["workspace_id"])
}

func TestFormatSingleRecords(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, FormatTable)

	require.NoError(t, f.FormatVerification(&models.EmailVerification{Email: "a@b.co", Status: "valid", CatchAll: models.Ptr(false)}))
	assert.Regexp(t, `Email:\s+a@b\.co`, buf.String())
	assert.Regexp(t, `Catch-all:\s+false`, buf.String())

	buf.Reset()
	require.NoError(t, f.FormatAction("Campaign paused", &models.ActionResult{Message: "ok"}))
	assert.Equal(t, "✓ Campaign paused: ok\n", buf.String())

	buf.Reset()
	require.NoError(t, f.FormatAction("Lead moved", &models.ActionResult{Success: models.Ptr(false)}))
	assert.Equal(t, "✗ Lead moved\n", buf.String())
}

func TestFormatOverview(t *testing.T) {
	overview := Overview{
		Workspace:  &models.Workspace{Name: "Acme"},
		Accounts:   3,
		Campaigns:  2,
		ActiveJobs: 1,
		Analytics:  &models.CampaignAnalytics{EmailsSentCount: 200, ReplyCount: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatTable).FormatOverview(overview))
	out := buf.String()
	assert.Regexp(t, `Workspace:\s+Acme`, out)
	assert.Regexp(t, `Accounts:\s+3`, out)
	assert.Regexp(t, `Reply rate:\s+2\.5%`, out)

	buf.Reset()
	require.NoError(t, NewFormatter(&buf, FormatJSON).FormatOverview(Overview{Accounts: 1}))
	assert.JSONEq(t, `{"workspace":null,"accounts":1,"campaigns":0,"active_jobs":0,"blocked_entries":0}`, buf.String())
}
