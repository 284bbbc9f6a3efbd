package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLead(t *testing.T) {
	body := `{"id":"lead_1","email":"new@example.com","first_name":"Jane","last_name":"Smith","status":1}`

	var lead Lead
	require.NoError(t, json.Unmarshal([]byte(body), &lead))

	assert.Equal(t, "lead_1", lead.ID)
	assert.Equal(t, "new@example.com", lead.Email)
	assert.Equal(t, "Jane Smith", lead.FullName())
	require.NotNil(t, lead.Status)
	assert.Equal(t, LeadStatusActive, *lead.Status)
	assert.Nil(t, lead.CreatedAt)
	assert.Empty(t, lead.Extra)
}

func TestDecodeRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "absent",
			body:  `{"id":"lead_1","first_name":"Jane"}`,
			field: "email",
		},
		{
			name:  "null",
			body:  `{"id":"lead_1","email":null}`,
			field: "email",
		},
		{
			name:  "missing id",
			body:  `{"email":"a@b.co"}`,
			field: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := Lead{ID: "untouched"}
			err := json.Unmarshal([]byte(tt.body), &lead)
			require.Error(t, err)

			decodeErr, ok := AsDecodeError(err)
			require.True(t, ok)
			assert.Equal(t, "Lead", decodeErr.Resource)
			assert.Equal(t, tt.field, decodeErr.Field)
			assert.True(t, decodeErr.IsMissingField())
			assert.Equal(t, "untouched", lead.ID, "no partial record on failure")
		})
	}
}

func TestDecodeMalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		target any
		body   string
		field  string
	}{
		{
			name:   "bad uuid",
			target: &Lead{},
			body:   `{"id":"l","email":"a@b.co","organization":"not-a-uuid"}`,
			field:  "organization",
		},
		{
			name:   "bad timestamp",
			target: &Lead{},
			body:   `{"id":"l","email":"a@b.co","timestamp_created":"yesterday"}`,
			field:  "timestamp_created",
		},
		{
			name:   "wrong type",
			target: &Lead{},
			body:   `{"id":"l","email":"a@b.co","email_open_count":"three"}`,
			field:  "email_open_count",
		},
		{
			name:   "nested record",
			target: &Campaign{},
			body: `{"id":"c","created_at":"2024-01-01T00:00:00Z","name":"n",
				"schedule":{"timezone":"UTC","end_time":"17:00","days":[1]}}`,
			field: "schedule.start_time",
		},
		{
			name:   "slice element",
			target: &CustomTag{},
			body: `{"id":"t","created_at":"2024-01-01T00:00:00Z","name":"n",
				"workspace_id":"0196eed7-b516-7082-bd55-11a2cf42ba3f","resource_ids":["bad"]}`,
			field: "resource_ids[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.target)
			decodeErr, ok := AsDecodeError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.field, decodeErr.Field)
			assert.NotEmpty(t, decodeErr.Reason)
		})
	}
}

func TestDecodeNotAnObject(t *testing.T) {
	for _, body := range []string{`null`, `[]`, `"lead"`, ``} {
		var lead Lead
		err := Decode("Lead", []byte(body), &lead)
		decodeErr, ok := AsDecodeError(err)
		require.True(t, ok, "body %q", body)
		assert.Equal(t, "Lead", decodeErr.Resource)
		assert.Empty(t, decodeErr.Field)
	}
}

func TestDecodeTarget(t *testing.T) {
	var lead Lead
	assert.Error(t, Decode("Lead", []byte(`{}`), lead))
	assert.Error(t, Decode("Lead", []byte(`{}`), nil))
}

func TestDecodePreservesExtra(t *testing.T) {
	body := `{"id":"lead_1","email":"a@b.co","brand_new_field":{"x":42},"score":7}`

	var lead Lead
	require.NoError(t, json.Unmarshal([]byte(body), &lead))

	require.Len(t, lead.Extra, 2)
	assert.JSONEq(t, `{"x":42}`, string(lead.Extra["brand_new_field"]))

	var score int
	found, err := lead.Extra.Get("score", &score)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, score)

	found, err = lead.Extra.Get("absent", &score)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDecodeEmbeddedRecordExtra(t *testing.T) {
	body := `{"id":"label_1","timestamp_created":"2024-01-01T00:00:00Z",
		"organization_id":"0196eed7-b516-7082-bd55-11a2cf42ba3f","name":"Hot","color":"#FF0000","priority":3}`

	var label LeadLabel
	require.NoError(t, json.Unmarshal([]byte(body), &label))

	assert.Equal(t, "label_1", label.ID)
	assert.Equal(t, "2024-01-01T00:00:00Z", label.CreatedAt.String())
	assert.Equal(t, "0196eed7-b516-7082-bd55-11a2cf42ba3f", label.WorkspaceID.String())
	assert.Equal(t, json.RawMessage(`3`), label.Extra["priority"])
	assert.NotContains(t, label.Extra, "organization_id")
}

func TestDecodeEmailBodyExtra(t *testing.T) {
	var body EmailBody
	require.NoError(t, json.Unmarshal([]byte(`{"text":"Hi","html":"<p>Hi</p>","amp":"<amp>Hi</amp>"}`), &body))

	assert.Equal(t, "Hi", body.Text)
	assert.Equal(t, "<p>Hi</p>", body.HTML)
	assert.JSONEq(t, `"<amp>Hi</amp>"`, string(body.Extra["amp"]))
	assert.NotContains(t, body.Extra, "text")

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Hi","html":"<p>Hi</p>"}`, string(out))
}

func TestDecodeAliases(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"primary names", `{"email":"a@b.co","timestamp_created":"2024-01-01T00:00:00Z","timestamp_updated":"2024-01-02T00:00:00Z"}`},
		{"alternate names", `{"email":"a@b.co","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var account Account
			require.NoError(t, json.Unmarshal([]byte(tt.body), &account))
			assert.Equal(t, "2024-01-01T00:00:00Z", account.CreatedAt.String())
			require.NotNil(t, account.UpdatedAt)
			assert.Equal(t, "2024-01-02T00:00:00Z", account.UpdatedAt.String())
			assert.Empty(t, account.Extra)
		})
	}
}

func TestDecodeDefaults(t *testing.T) {
	var account Account
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@b.co","created_at":"2024-01-01T00:00:00Z"}`), &account))
	assert.Equal(t, "pro", account.Plan)
	assert.Equal(t, "UTC", account.Timezone)

	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@b.co","created_at":"2024-01-01T00:00:00Z","plan":"growth","timezone":"Europe/Oslo"}`), &account))
	assert.Equal(t, "growth", account.Plan)
	assert.Equal(t, "Europe/Oslo", account.Timezone)

	var ws Workspace
	require.NoError(t, json.Unmarshal([]byte(`{"id":"0196eed7-b516-7082-bd55-11a2cf42ba3f","name":"Acme","org_logo_url":"https://x/logo.png"}`), &ws))
	assert.Equal(t, "UTC", ws.Timezone)
	assert.Equal(t, "en", ws.Language)
	assert.Equal(t, "https://x/logo.png", ws.LogoURL)
}

func TestDecodeUnknownEnumValues(t *testing.T) {
	var lead Lead
	require.NoError(t, json.Unmarshal([]byte(`{"id":"l","email":"a@b.co","status":42,"esp_code":77,"upload_method":"carrier-pigeon"}`), &lead))
	require.NotNil(t, lead.Status)
	assert.Equal(t, LeadStatus(42), *lead.Status)
	assert.False(t, lead.Status.Known())
	assert.Equal(t, "Unknown", lead.Status.String())
	assert.False(t, lead.ESPCode.Known())
	assert.Equal(t, UploadMethod("carrier-pigeon"), lead.UploadMethod)

	body := `{"id":"job_1","created_at":"2024-01-01T00:00:00Z","workspace_id":"` + uuid.NewString() + `",
		"type":"dedupe-leads","progress":10,"status":"queued"}`
	var job BackgroundJob
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	assert.Equal(t, JobStatus("queued"), job.Status)
	assert.False(t, job.Status.Known())
	assert.False(t, job.Type.Known())
	assert.False(t, job.Status.Done())
	assert.False(t, job.Finished())
}

func TestBackgroundJobFinished(t *testing.T) {
	tests := []struct {
		status   JobStatus
		progress int
		want     bool
	}{
		{JobStatusSuccess, 100, true},
		{JobStatusFailed, 40, true},
		{JobStatusInProgress, 100, false},
		{JobStatusPending, 0, false},
		{"completed", 100, true},
		{"completed", 99, false},
		{"queued", 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.status, tt.progress), func(t *testing.T) {
			job := BackgroundJob{Status: tt.status, Progress: tt.progress}
			assert.Equal(t, tt.want, job.Finished())
		})
	}
}

func TestDecodeCampaign(t *testing.T) {
	body := `{
		"id": "camp_123",
		"name": "Test Campaign",
		"status": "active",
		"schedule": {"timezone":"UTC","start_time":"09:00","end_time":"17:00","days":[1,2,3,4,5],"max_emails_per_day":100},
		"email_list_id": "list_123",
		"sequence_id": "seq_123",
		"daily_limit": 100,
		"stop_on_reply": true,
		"open_tracking": true,
		"created_at": "2024-01-01T00:00:00Z",
		"updated_at": "2024-01-02T00:00:00+00:00"
	}`

	var campaign Campaign
	require.NoError(t, json.Unmarshal([]byte(body), &campaign))

	assert.Equal(t, "camp_123", campaign.ID)
	assert.Equal(t, CampaignStatusActive, campaign.Status)
	require.NotNil(t, campaign.Schedule)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, campaign.Schedule.Days)
	require.NotNil(t, campaign.Schedule.MaxEmailsPerDay)
	assert.Equal(t, 100, *campaign.Schedule.MaxEmailsPerDay)
	assert.True(t, campaign.StopOnReply)
	assert.False(t, campaign.LinkTracking)
	assert.Equal(t, "2024-01-02T00:00:00Z", campaign.UpdatedAt.String())
}

func TestDecodeItems(t *testing.T) {
	items := []json.RawMessage{
		json.RawMessage(`{"id":"l1","email":"one@example.com"}`),
		json.RawMessage(`{"id":"l2","email":"two@example.com"}`),
	}

	leads, err := DecodeItems[Lead]("Lead", "items", items)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "l1", leads[0].ID)
	assert.Equal(t, "l2", leads[1].ID)

	items[1] = json.RawMessage(`{"id":"l2"}`)
	leads, err = DecodeItems[Lead]("Lead", "items", items)
	assert.Nil(t, leads)
	decodeErr, ok := AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "Lead", decodeErr.Resource)
	assert.Equal(t, "items[1].email", decodeErr.Field)
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Resource: "Lead", Field: "email", Reason: reasonMissing}
	assert.Equal(t, `decode Lead: field "email": missing required field`, err.Error())

	err = &DecodeError{Resource: "Lead", Reason: "empty response"}
	assert.Equal(t, "decode Lead: empty response", err.Error())
}
