package models

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"},
		{"2024-01-01T00:00:00+00:00", "2024-01-01T00:00:00Z"},
		{"2024-01-01T02:30:00+02:30", "2024-01-01T00:00:00Z"},
		{"2023-12-31T19:00:00-05:00", "2024-01-01T00:00:00Z"},
		{"2025-05-20T17:57:16.212Z", "2025-05-20T17:57:16.212Z"},
		{"2024-01-01T10:00:00", "2024-01-01T10:00:00Z"},
		{"2024-01-01 10:00:00", "2024-01-01T10:00:00Z"},
		{"2024-01-01", "2024-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-13-01T00:00:00Z", "1704067200"} {
		_, err := ParseTimestamp(input)
		assert.Error(t, err, input)
	}
}

func TestTimestampJSON(t *testing.T) {
	oslo := time.FixedZone("CET", 3600)
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 13, 45, 30, 0, oslo),
		time.Date(2025, 5, 20, 17, 57, 16, 212_000_000, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 999_999_999, time.FixedZone("", -7*3600)),
	}

	for _, instant := range instants {
		encoded, err := json.Marshal(NewTimestamp(instant))
		require.NoError(t, err)
		assert.Regexp(t, `Z"$`, string(encoded))

		var decoded Timestamp
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.True(t, decoded.Equal(NewTimestamp(instant)), "round trip of %s", instant)
	}
}

func TestTimestampUnmarshalRejectsNonString(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`1704067200`), &ts)
	assert.EqualError(t, err, "timestamp must be a string")
}

func TestTimestampEncodeValues(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("", 3600)))
	values := url.Values{}
	require.NoError(t, ts.EncodeValues("start_date", &values))
	assert.Equal(t, "2024-01-01T00:00:00Z", values.Get("start_date"))
}
