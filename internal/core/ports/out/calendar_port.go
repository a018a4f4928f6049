package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

type CalendarPort interface {
	// Шаблон интервью: название, длительность, состав интервьюеров
	GetInterviewTemplate(ctx context.Context, templateID uuid.UUID) (*domain.InterviewTemplate, error)

	// Занятость интервьюеров, метки времени остаются сырыми до нормализатора
	GetFreeBusy(ctx context.Context, interviewerIDs []uuid.UUID) ([]domain.FreeBusyCalendar, error)
}
