package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

// CachePort кэширует только входные данные провайдера.
// Рассчитанная доступность не кэшируется никогда
type CachePort interface {
	// Кэширование шаблонов интервью
	GetTemplate(ctx context.Context, templateID uuid.UUID) (*domain.InterviewTemplate, bool)
	StoreTemplate(ctx context.Context, template domain.InterviewTemplate)
	InvalidateTemplate(ctx context.Context, templateID uuid.UUID)

	// Кэширование занятости интервьюеров
	GetFreeBusy(ctx context.Context, interviewerID uuid.UUID) (*domain.FreeBusyCalendar, bool)
	StoreFreeBusy(ctx context.Context, calendar domain.FreeBusyCalendar)
	InvalidateFreeBusy(ctx context.Context, interviewerID uuid.UUID)

	// Полная очистка
	InvalidateAll(ctx context.Context)
}
