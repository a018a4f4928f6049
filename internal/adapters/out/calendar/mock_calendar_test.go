package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/interview-availability-service/internal/config"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
	"github.com/suchimauz/interview-availability-service/internal/utils"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields)       {}
func (l nopLogger) Info(event string, fields out.LogFields)        {}
func (l nopLogger) Warn(event string, fields out.LogFields)        {}
func (l nopLogger) Error(event string, fields out.LogFields)       {}
func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newMockAdapter(seed int64) *MockCalendarAdapter {
	cfg := &config.Config{}
	cfg.Calendar.MockSeed = seed
	return NewMockCalendarAdapter(cfg, nopLogger{})
}

func TestMockCalendar_TemplateDeterminism(t *testing.T) {
	adapter := newMockAdapter(42)
	templateID := uuid.MustParse("6fa1b0a3-8c43-4b8f-9d35-1d2b6a2f0c11")

	first, err := adapter.GetInterviewTemplate(context.Background(), templateID)
	require.NoError(t, err)
	second, err := adapter.GetInterviewTemplate(context.Background(), templateID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, templateID, first.ID)
	assert.Equal(t, 60, first.DurationMinutes)
	require.Len(t, first.InterviewerIDs, mockInterviewers)

	// Другой шаблон дает другой состав интервьюеров
	other, err := adapter.GetInterviewTemplate(context.Background(), uuid.MustParse("0e3c9f4a-2f7b-4a1c-b2ce-55d4a0b3f6d2"))
	require.NoError(t, err)
	assert.NotEqual(t, first.InterviewerIDs, other.InterviewerIDs)
}

func TestMockCalendar_FreeBusyDeterminism(t *testing.T) {
	templateID := uuid.MustParse("6fa1b0a3-8c43-4b8f-9d35-1d2b6a2f0c11")

	adapter := newMockAdapter(42)
	template, err := adapter.GetInterviewTemplate(context.Background(), templateID)
	require.NoError(t, err)

	first, err := adapter.GetFreeBusy(context.Background(), template.InterviewerIDs)
	require.NoError(t, err)
	second, err := adapter.GetFreeBusy(context.Background(), template.InterviewerIDs)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// То же зерно в новом адаптере дает тот же календарь
	again, err := newMockAdapter(42).GetFreeBusy(context.Background(), template.InterviewerIDs)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// Другое зерно меняет занятость
	otherSeed, err := newMockAdapter(7).GetFreeBusy(context.Background(), template.InterviewerIDs)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherSeed)
}

func TestMockCalendar_BusyBlocksWithinWorkHours(t *testing.T) {
	templateID := uuid.MustParse("6fa1b0a3-8c43-4b8f-9d35-1d2b6a2f0c11")

	adapter := newMockAdapter(1)
	template, err := adapter.GetInterviewTemplate(context.Background(), templateID)
	require.NoError(t, err)

	calendars, err := adapter.GetFreeBusy(context.Background(), template.InterviewerIDs)
	require.NoError(t, err)
	require.Len(t, calendars, mockInterviewers)

	horizon := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, mockBusyDays)

	for _, calendar := range calendars {
		require.NotEmpty(t, calendar.Name)
		require.GreaterOrEqual(t, len(calendar.Busy), 3)
		require.LessOrEqual(t, len(calendar.Busy), 6)

		for i, block := range calendar.Busy {
			start, err := utils.ParseTimestamp(block.Start)
			require.NoError(t, err)
			end, err := utils.ParseTimestamp(block.End)
			require.NoError(t, err)

			assert.True(t, end.After(start), "block %d: %s / %s", i, block.Start, block.End)
			assert.True(t, start.Before(horizon))

			dayOpen := time.Date(start.Year(), start.Month(), start.Day(), mockWorkStartHour, 0, 0, 0, time.UTC)
			dayClose := time.Date(start.Year(), start.Month(), start.Day(), mockWorkEndHour, 0, 0, 0, time.UTC)
			assert.False(t, start.Before(dayOpen))
			assert.False(t, end.After(dayClose))

			// Старты с точностью до 5 минут
			assert.Zero(t, start.Minute()%5)
			assert.Zero(t, start.Second())
		}

		// Блоки отсортированы по началу
		for i := 1; i < len(calendar.Busy); i++ {
			assert.LessOrEqual(t, calendar.Busy[i-1].Start, calendar.Busy[i].Start)
		}
	}
}
