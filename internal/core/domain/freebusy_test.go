package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Провайдеры присылают границы то как start/end, то как startTime/endTime
func TestRawBusyPeriod_UnmarshalJSON_KeyVariants(t *testing.T) {
	var period RawBusyPeriod
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2030-01-01T09:00:00Z","end":"2030-01-01T10:00:00Z"}`), &period))
	assert.Equal(t, "2030-01-01T09:00:00Z", period.Start)
	assert.Equal(t, "2030-01-01T10:00:00Z", period.End)

	require.NoError(t, json.Unmarshal([]byte(`{"startTime":"2030-01-01T09:00:00Z","endTime":"2030-01-01T10:00:00Z"}`), &period))
	assert.Equal(t, "2030-01-01T09:00:00Z", period.Start)
	assert.Equal(t, "2030-01-01T10:00:00Z", period.End)
}

func TestInterval_Intersect(t *testing.T) {
	base := Interval{
		Start: time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 1, 17, 0, 0, 0, time.UTC),
	}

	clipped, ok := base.Intersect(Interval{
		Start: time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
	})
	require.True(t, ok)
	assert.Equal(t, base.Start, clipped.Start)
	assert.Equal(t, time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC), clipped.End)

	// Полуоткрытые промежутки: касание границами — не пересечение
	_, ok = base.Intersect(Interval{
		Start: time.Date(2030, 1, 1, 17, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC),
	})
	assert.False(t, ok)

	// Нулевая ширина после обрезки — не пересечение
	_, ok = base.Intersect(Interval{
		Start: time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
	})
	assert.False(t, ok)
}

func TestInterval_MarshalJSON(t *testing.T) {
	interval := Interval{
		Start: time.Date(2030, 1, 1, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(interval)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2030-01-01T11:00:00Z","end":"2030-01-01T12:00:00Z"}`, string(data))

	var decoded Interval
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Start.Equal(interval.Start))
	assert.True(t, decoded.End.Equal(interval.End))
}
