package availability_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

func TestGenerateSlots_AlignmentAndContainment(t *testing.T) {
	windows := []domain.Interval{
		// Старт не на границе получаса: кандидат выравнивается вверх
		{Start: day(9, 7), End: day(12, 0)},
	}

	slots := generateSlots(windows, time.Hour, 9, 17, day(0, 0))

	require.Len(t, slots, 4)
	assert.Equal(t, day(9, 30), slots[0].Start)
	for _, slot := range slots {
		assert.Contains(t, []int{0, 30}, slot.Start.Minute())
		assert.Zero(t, slot.Start.Second())
		assert.Equal(t, time.Hour, slot.Duration())
		assert.False(t, slot.Start.Before(windows[0].Start))
		assert.False(t, slot.End.After(windows[0].End))
	}
}

// Окно, конец которого впритык к slot.start + duration
func TestGenerateSlots_TightWindowEnd(t *testing.T) {
	windows := []domain.Interval{
		{Start: day(10, 0), End: day(11, 0)},
	}

	slots := generateSlots(windows, time.Hour, 9, 17, day(0, 0))

	require.Len(t, slots, 1)
	assert.Equal(t, day(10, 0), slots[0].Start)
	assert.Equal(t, day(11, 0), slots[0].End)

	// Минутой короче — и слотов нет
	windows[0].End = day(10, 59)
	assert.Empty(t, generateSlots(windows, time.Hour, 9, 17, day(0, 0)))
}

func TestGenerateSlots_WindowShorterThanDuration(t *testing.T) {
	windows := []domain.Interval{
		{Start: day(10, 0), End: day(10, 30)},
	}

	assert.Empty(t, generateSlots(windows, time.Hour, 9, 17, day(0, 0)))
}

func TestGenerateSlots_LeadTimeFloorSeedsWalk(t *testing.T) {
	windows := []domain.Interval{
		{Start: day(9, 0), End: day(17, 0)},
	}

	floor := day(13, 30)
	slots := generateSlots(windows, time.Hour, 9, 17, floor)

	require.NotEmpty(t, slots)
	assert.Equal(t, floor, slots[0].Start)
	for _, slot := range slots {
		assert.False(t, slot.Start.Before(floor))
	}

	// Окно целиком до границы упреждения отпадает само
	early := []domain.Interval{
		{Start: day(9, 0), End: day(11, 0)},
	}
	assert.Empty(t, generateSlots(early, time.Hour, 9, 17, day(12, 0)))
}

// Слот может закончиться ровно в workEndHour, но не позже
func TestGenerateSlots_WorkdayClosing(t *testing.T) {
	windows := []domain.Interval{
		{Start: day(15, 30), End: day(18, 0)},
	}

	slots := generateSlots(windows, time.Hour, 9, 17, day(0, 0))

	require.Len(t, slots, 2)
	assert.Equal(t, day(15, 30), slots[0].Start)
	assert.Equal(t, day(16, 0), slots[1].Start)
	assert.Equal(t, day(17, 0), slots[1].End)
}

func TestIsWithinWorkday(t *testing.T) {
	assert.True(t, isWithinWorkday(day(9, 0), day(10, 0), 9, 17))
	assert.True(t, isWithinWorkday(day(16, 0), day(17, 0), 9, 17))
	assert.False(t, isWithinWorkday(day(8, 30), day(9, 30), 9, 17))
	assert.False(t, isWithinWorkday(day(16, 30), day(17, 30), 9, 17))

	// Слот через полночь отбрасывается, не усекается
	lateStart := time.Date(2030, 1, 1, 23, 30, 0, 0, time.UTC)
	assert.False(t, isWithinWorkday(lateStart, lateStart.Add(time.Hour), 0, 23))
}

// Слоты соседних окон не требуют дополнительной сортировки
func TestGenerateSlots_ChronologicalAcrossWindows(t *testing.T) {
	windows := []domain.Interval{
		{Start: day(9, 0), End: day(10, 0)},
		{Start: day(14, 0), End: day(16, 0)},
	}

	slots := generateSlots(windows, time.Hour, 9, 17, day(0, 0))

	require.Greater(t, len(slots), 1)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].Start.After(slots[i-1].Start))
	}
}
