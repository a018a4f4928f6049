package calendar

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/interview-availability-service/internal/config"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
	"github.com/suchimauz/interview-availability-service/internal/utils"
)

// MockCalendarAdapter — детерминированный источник данных для локальной
// разработки: вместо похода в календарный сервис генерирует занятость
// псевдослучайно от фиксированного зерна. Один и тот же интервьюер при
// одном зерне всегда получает одни и те же занятые блоки
type MockCalendarAdapter struct {
	seed   int64
	logger out.LoggerPort
}

var mockInterviewerNames = []string{
	"Alice Johnson",
	"Bob Smith",
	"Carol Williams",
	"David Brown",
	"Emma Davis",
	"Frank Miller",
}

const (
	mockDurationMinutes = 60
	mockInterviewers    = 3
	mockBusyDays        = 7
	mockWorkStartHour   = 9
	mockWorkEndHour     = 17
)

func NewMockCalendarAdapter(cfg *config.Config, logger out.LoggerPort) *MockCalendarAdapter {
	logger.Warn("calendar.mock.enabled", out.LogFields{
		"seed": cfg.Calendar.MockSeed,
	})

	return &MockCalendarAdapter{
		seed:   cfg.Calendar.MockSeed,
		logger: logger,
	}
}

// Шаблон выводится из его же ID: интервьюеры — SHA1-производные UUID,
// чтобы повторный запрос отдавал тот же состав
func (a *MockCalendarAdapter) GetInterviewTemplate(ctx context.Context, templateID uuid.UUID) (*domain.InterviewTemplate, error) {
	interviewerIDs := make([]uuid.UUID, 0, mockInterviewers)
	for i := 0; i < mockInterviewers; i++ {
		interviewerIDs = append(interviewerIDs, uuid.NewSHA1(templateID, []byte(fmt.Sprintf("interviewer-%d", i))))
	}

	template := &domain.InterviewTemplate{
		ID:              templateID,
		Name:            "Technical Interview",
		DurationMinutes: mockDurationMinutes,
		InterviewerIDs:  interviewerIDs,
	}

	a.logger.Debug("calendar.mock.template", out.LogFields{
		"templateId":   templateID,
		"interviewers": len(interviewerIDs),
	})

	return template, nil
}

func (a *MockCalendarAdapter) GetFreeBusy(ctx context.Context, interviewerIDs []uuid.UUID) ([]domain.FreeBusyCalendar, error) {
	calendars := make([]domain.FreeBusyCalendar, 0, len(interviewerIDs))

	startDay := time.Now().UTC().Truncate(24 * time.Hour)

	for _, id := range interviewerIDs {
		rng := rand.New(rand.NewSource(a.seed + interviewerSeed(id)))

		calendars = append(calendars, domain.FreeBusyCalendar{
			InterviewerID: id,
			Name:          mockInterviewerNames[int(interviewerSeed(id))%len(mockInterviewerNames)],
			Busy:          generateBusyBlocks(rng, startDay),
		})
	}

	a.logger.Debug("calendar.mock.freebusy", out.LogFields{
		"calendars": len(calendars),
	})

	return calendars, nil
}

func interviewerSeed(id uuid.UUID) int64 {
	var seed int64
	for _, b := range id {
		seed = seed*31 + int64(b)
	}
	if seed < 0 {
		seed = -seed
	}
	return seed
}

// generateBusyBlocks выдает 3-6 занятых блоков на ближайшую неделю
// в рабочие часы, старты с точностью до 5 минут, длительность от 30 минут
// до 2.5 часов. Конец блока не вылезает за рабочий день
func generateBusyBlocks(rng *rand.Rand, startDay time.Time) []domain.RawBusyPeriod {
	blocksCount := 3 + rng.Intn(4)
	blocks := make([]domain.RawBusyPeriod, 0, blocksCount)

	for i := 0; i < blocksCount; i++ {
		dayOffset := rng.Intn(mockBusyDays)
		day := startDay.AddDate(0, 0, dayOffset)

		startHour := mockWorkStartHour + rng.Intn(mockWorkEndHour-mockWorkStartHour)
		startMinute := rng.Intn(12) * 5
		durationMinutes := (6 + rng.Intn(25)) * 5

		blockStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, time.UTC)
		blockEnd := blockStart.Add(time.Duration(durationMinutes) * time.Minute)

		dayClose := time.Date(day.Year(), day.Month(), day.Day(), mockWorkEndHour, 0, 0, 0, time.UTC)
		if blockEnd.After(dayClose) {
			blockEnd = dayClose
		}

		blocks = append(blocks, domain.RawBusyPeriod{
			Start: utils.FormatUTC(blockStart),
			End:   utils.FormatUTC(blockEnd),
		})
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Start < blocks[j].Start
	})

	return blocks
}
