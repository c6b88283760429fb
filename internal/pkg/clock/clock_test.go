//go:build unit

package clock_test

import (
	"encoding/json"
	"testing"
	"time"

	"service-desk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-01-02T03:04:05Z", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2025-01-02T08:49:05+05:45", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2025-01-02T03:04:05", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2025-01-02T03:04:05.123456", time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC)},
		{"2025-01-02 03:04:05", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2025-01-02", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := clock.ParseTimestamp(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}

	_, err := clock.ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var doc struct {
		A clock.Timestamp `json:"a"`
		B clock.Timestamp `json:"b"`
		C clock.Timestamp `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2025-01-02T03:04:05","b":null,"c":""}`), &doc))
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), doc.A.Time)
	assert.True(t, doc.B.IsZero())
	assert.True(t, doc.C.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"a":12}`), &doc))
}
