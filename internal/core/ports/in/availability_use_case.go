package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

type AvailabilityUseCase interface {
	// Расчет общих доступных слотов для шаблона интервью
	ComputeAvailability(ctx context.Context, templateID uuid.UUID, query domain.AvailabilityQuery) (*domain.AvailabilityResult, error)

	// Обновление кэшей по событиям календарного сервиса
	StoreTemplateCache(ctx context.Context, template domain.InterviewTemplate)
	InvalidateTemplateCache(ctx context.Context, templateID uuid.UUID)
	StoreFreeBusyCache(ctx context.Context, calendar domain.FreeBusyCalendar)
	InvalidateFreeBusyCache(ctx context.Context, interviewerID uuid.UUID)
	InvalidateAllCaches(ctx context.Context)
}
