package availability_service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/interview-availability-service/internal/config"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
	"github.com/suchimauz/interview-availability-service/internal/utils"
)

type AvailabilityService struct {
	calendarPort out.CalendarPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config
}

func NewAvailabilityService(
	calendarPort out.CalendarPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		calendarPort: calendarPort,
		cachePort:    cachePort,
		cfg:          cfg,
		logger:       logger.WithModule("AvailabilityService"),
	}
}

// ComputeAvailability — единственная операция движка: от сырых календарей
// до упорядоченного списка слотов.
//
// Конвейер: валидация -> шаблон и занятость -> нормализация и сведение
// промежутков -> развертка свободных окон -> генерация слотов.
// Каждый этап — чистая функция своих входов, между вызовами состояния нет
func (s *AvailabilityService) ComputeAvailability(ctx context.Context, templateID uuid.UUID, query domain.AvailabilityQuery) (*domain.AvailabilityResult, error) {
	debugInfo := AvailabilityServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}

	s.logger.Info("availability.compute.started", out.LogFields{
		"templateId":  templateID,
		"searchStart": query.SearchStart,
		"searchEnd":   query.SearchEnd,
	})

	if err := validateQuery(query); err != nil {
		s.logger.Warn("availability.compute.invalid_query", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}

	fetch_template_debug := domain.DebugInfo{
		Event: "availability.compute.template.fetch",
	}
	fetch_template_debug.Start()

	template, err := s.getTemplate(ctx, templateID)
	if err != nil {
		s.logger.Error("availability.compute.template.fetch_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("availability.compute.template.fetch_failed: %w", err)
	}

	fetch_template_debug.Elapse()
	debugInfo.AddDebugInfo(fetch_template_debug)

	fetch_freebusy_debug := domain.DebugInfo{
		Event: "availability.compute.freebusy.fetch",
	}
	fetch_freebusy_debug.Start()

	calendars, err := s.getFreeBusy(ctx, template.InterviewerIDs)
	if err != nil {
		s.logger.Error("availability.compute.freebusy.fetch_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("availability.compute.freebusy.fetch_failed: %w", err)
	}

	fetch_freebusy_debug.Elapse()
	debugInfo.AddDebugInfo(fetch_freebusy_debug)

	merge_debug := domain.DebugInfo{
		Event: "availability.compute.free_windows.merge",
	}
	merge_debug.Start()

	busyIntervals, err := collectBusyIntervals(calendars)
	if err != nil {
		s.logger.Error("availability.compute.collect_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}

	freeWindows := mergeFreeWindows(busyIntervals, query.SearchStart, query.SearchEnd)

	merge_debug.Elapse()
	debugInfo.AddDebugInfo(merge_debug)

	generate_slots_debug := domain.DebugInfo{
		Event: "availability.compute.slots.generate",
	}
	generate_slots_debug.Start()

	// Правило минимального упреждения: старт не раньше now + N часов,
	// выровненный вверх на полчаса. Окно поиска может начинаться и позже
	leadTime := time.Duration(s.cfg.Availability.LeadHours) * time.Hour
	minSlotStart := query.Now.Add(leadTime)
	if query.SearchStart.After(minSlotStart) {
		minSlotStart = query.SearchStart
	}
	minSlotStart = utils.CeilToHalfHour(minSlotStart)

	slots := generateSlots(freeWindows, template.Duration(), query.WorkStartHour, query.WorkEndHour, minSlotStart)

	generate_slots_debug.Elapse()
	debugInfo.AddDebugInfo(generate_slots_debug)

	s.logger.Info("availability.compute.finished", out.LogFields{
		"templateId":       templateID,
		"busyCount":        len(busyIntervals),
		"freeWindowsCount": len(freeWindows),
		"slotsCount":       len(slots),
	})

	interviewers := make([]domain.Interviewer, 0, len(calendars))
	for _, calendar := range calendars {
		interviewers = append(interviewers, domain.Interviewer{
			ID:   calendar.InterviewerID,
			Name: calendar.Name,
		})
	}

	return &domain.AvailabilityResult{
		Template:      *template,
		Interviewers:  interviewers,
		Slots:         slots,
		FreeWindows:   freeWindows,
		BusyCalendars: calendars,
		Debug:         debugInfo.data,
	}, nil
}

func (s *AvailabilityService) getTemplate(ctx context.Context, templateID uuid.UUID) (*domain.InterviewTemplate, error) {
	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if template, exists := s.cachePort.GetTemplate(ctx, templateID); exists {
			s.logger.Debug("availability.template.cache.hit", out.LogFields{
				"templateId": templateID,
			})
			return template, nil
		}
	}

	template, err := s.calendarPort.GetInterviewTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreTemplate(ctx, *template)
	}

	return template, nil
}

// getFreeBusy собирает календари из кэша, недостающие дотягивает
// у провайдера одним запросом
func (s *AvailabilityService) getFreeBusy(ctx context.Context, interviewerIDs []uuid.UUID) ([]domain.FreeBusyCalendar, error) {
	calendars := make([]domain.FreeBusyCalendar, 0, len(interviewerIDs))
	missingIDs := make([]uuid.UUID, 0, len(interviewerIDs))

	cached := make(map[uuid.UUID]*domain.FreeBusyCalendar)
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		for _, id := range interviewerIDs {
			if calendar, exists := s.cachePort.GetFreeBusy(ctx, id); exists {
				cached[id] = calendar
			} else {
				missingIDs = append(missingIDs, id)
			}
		}
	} else {
		missingIDs = interviewerIDs
	}

	fetched := make(map[uuid.UUID]*domain.FreeBusyCalendar)
	if len(missingIDs) > 0 {
		missing, err := s.calendarPort.GetFreeBusy(ctx, missingIDs)
		if err != nil {
			return nil, err
		}
		for i := range missing {
			calendar := missing[i]
			fetched[calendar.InterviewerID] = &calendar
			if s.cachePort != nil && s.cfg.Cache.Enabled {
				s.cachePort.StoreFreeBusy(ctx, calendar)
			}
		}
	}

	// Сохраняем порядок интервьюеров из шаблона
	for _, id := range interviewerIDs {
		if calendar, ok := cached[id]; ok {
			calendars = append(calendars, *calendar)
			continue
		}
		if calendar, ok := fetched[id]; ok {
			calendars = append(calendars, *calendar)
		}
	}

	return calendars, nil
}

func (s *AvailabilityService) StoreTemplateCache(ctx context.Context, template domain.InterviewTemplate) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}
	s.cachePort.StoreTemplate(ctx, template)
}

func (s *AvailabilityService) InvalidateTemplateCache(ctx context.Context, templateID uuid.UUID) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}
	s.cachePort.InvalidateTemplate(ctx, templateID)
}

func (s *AvailabilityService) StoreFreeBusyCache(ctx context.Context, calendar domain.FreeBusyCalendar) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}
	s.cachePort.StoreFreeBusy(ctx, calendar)
}

func (s *AvailabilityService) InvalidateFreeBusyCache(ctx context.Context, interviewerID uuid.UUID) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}
	s.cachePort.InvalidateFreeBusy(ctx, interviewerID)
}

func (s *AvailabilityService) InvalidateAllCaches(ctx context.Context) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}
	s.cachePort.InvalidateAll(ctx)
}
