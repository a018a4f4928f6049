package json_types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Time
	}{
		{`"2030-01-01T09:30:00Z"`, time.Date(2030, 1, 1, 9, 30, 0, 0, time.UTC)},
		{`"2030-01-01T12:30:00+03:00"`, time.Date(2030, 1, 1, 9, 30, 0, 0, time.UTC)},
		{`"2030-01-01T09:30:00"`, time.Date(2030, 1, 1, 9, 30, 0, 0, time.UTC)},
		{`"2030-01-01"`, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		var dt DateTime
		require.NoError(t, json.Unmarshal([]byte(tc.input), &dt), "input %s", tc.input)
		assert.Equal(t, tc.expected, dt.Date, "input %s", tc.input)
	}
}

func TestDateTime_UnmarshalJSON_Malformed(t *testing.T) {
	var dt DateTime
	assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &dt))
}

func TestDateTime_MarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	dt := DateTime{Date: time.Date(2030, 1, 1, 12, 30, 0, 0, loc)}

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2030-01-01T09:30:00Z"`, string(data))
}
