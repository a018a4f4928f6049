package availability_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

func day(hour, minute int) time.Time {
	return time.Date(2030, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestMergeFreeWindows_Empty(t *testing.T) {
	windows := mergeFreeWindows(nil, day(9, 0), day(17, 0))

	require.Len(t, windows, 1)
	assert.Equal(t, day(9, 0), windows[0].Start)
	assert.Equal(t, day(17, 0), windows[0].End)
}

func TestMergeFreeWindows_Overlapping(t *testing.T) {
	busy := []domain.Interval{
		{Start: day(9, 30), End: day(10, 30)},
		{Start: day(10, 0), End: day(11, 0)},
	}

	windows := mergeFreeWindows(busy, day(9, 0), day(17, 0))

	require.Len(t, windows, 2)
	assert.Equal(t, domain.Interval{Start: day(9, 0), End: day(9, 30)}, windows[0])
	assert.Equal(t, domain.Interval{Start: day(11, 0), End: day(17, 0)}, windows[1])
}

// Полуоткрытая семантика: блок, кончающийся в T, и блок, начинающийся в T,
// не создают ни двойной занятости, ни окна нулевой ширины
func TestMergeFreeWindows_HalfOpenAdjacency(t *testing.T) {
	busy := []domain.Interval{
		{Start: day(10, 0), End: day(11, 0)},
		{Start: day(11, 0), End: day(12, 0)},
	}

	windows := mergeFreeWindows(busy, day(9, 0), day(17, 0))

	require.Len(t, windows, 2)
	assert.Equal(t, day(10, 0), windows[0].End)
	assert.Equal(t, day(12, 0), windows[1].Start)
	for _, window := range windows {
		assert.True(t, window.Start.Before(window.End), "zero-width window %v", window)
	}
}

// Много совпадающих границ подряд: ни одного призрачного окна
func TestMergeFreeWindows_NoGhostWindows(t *testing.T) {
	busy := make([]domain.Interval, 0, 16)
	for hour := 9; hour < 17; hour++ {
		busy = append(busy, domain.Interval{Start: day(hour, 0), End: day(hour+1, 0)})
		// Дублируем каждую границу еще и нулевым промежутком
		busy = append(busy, domain.Interval{Start: day(hour, 0), End: day(hour, 0)})
	}

	windows := mergeFreeWindows(busy, day(9, 0), day(17, 0))

	assert.Empty(t, windows)
}

func TestMergeFreeWindows_ClipsToSearchWindow(t *testing.T) {
	busy := []domain.Interval{
		// Частично до окна
		{Start: day(8, 0), End: day(9, 30)},
		// Целиком вне окна
		{Start: day(18, 0), End: day(19, 0)},
		// Частично после окна
		{Start: day(16, 30), End: day(17, 30)},
	}

	windows := mergeFreeWindows(busy, day(9, 0), day(17, 0))

	require.Len(t, windows, 1)
	assert.Equal(t, domain.Interval{Start: day(9, 30), End: day(16, 30)}, windows[0])
}

func TestMergeFreeWindows_FullyBusy(t *testing.T) {
	busy := []domain.Interval{
		{Start: day(0, 0), End: day(23, 0)},
	}

	windows := mergeFreeWindows(busy, day(9, 0), day(17, 0))

	assert.Empty(t, windows)
}

// Окна выходят упорядоченными и непересекающимися
func TestMergeFreeWindows_Ordered(t *testing.T) {
	busy := []domain.Interval{
		{Start: day(15, 0), End: day(16, 0)},
		{Start: day(10, 0), End: day(11, 0)},
		{Start: day(12, 30), End: day(13, 0)},
	}

	windows := mergeFreeWindows(busy, day(9, 0), day(17, 0))

	require.Len(t, windows, 4)
	for i := 1; i < len(windows); i++ {
		assert.False(t, windows[i].Start.Before(windows[i-1].End), "windows %d and %d overlap", i-1, i)
	}
}
