package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/interview-availability-service/internal/config"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
)

// Занятость быстро протухает даже при работающей инвалидации,
// поэтому записи календарей дополнительно ограничены по времени
const freeBusyTTL = 5 * time.Minute

type FreeBusyCacheEntry struct {
	Calendar  domain.FreeBusyCalendar
	Timestamp time.Time
}

type CacheAdapter struct {
	templatesCache *lru.Cache[uuid.UUID, domain.InterviewTemplate]
	freeBusyCache  *lru.Cache[uuid.UUID, *FreeBusyCacheEntry]
	freeBusyTTL    time.Duration
	mu             sync.RWMutex
	logger         out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	templatesCache, err := lru.New[uuid.UUID, domain.InterviewTemplate](cfg.Cache.TemplatesSize)
	if err != nil {
		logger.Error("cache.templates.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.TemplatesSize,
		})
		return nil, err
	}

	freeBusyCache, err := lru.New[uuid.UUID, *FreeBusyCacheEntry](cfg.Cache.FreeBusySize)
	if err != nil {
		logger.Error("cache.freebusy.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.FreeBusySize,
		})
		return nil, err
	}

	return &CacheAdapter{
		templatesCache: templatesCache,
		freeBusyCache:  freeBusyCache,
		freeBusyTTL:    freeBusyTTL,
		logger:         logger.WithModule("CacheAdapter"),
	}, nil
}

// Кэширование шаблонов интервью

func (c *CacheAdapter) GetTemplate(ctx context.Context, templateID uuid.UUID) (*domain.InterviewTemplate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	template, exists := c.templatesCache.Get(templateID)
	if !exists {
		c.logger.Debug("cache.template.get.miss", out.LogFields{
			"templateId": templateID,
		})
		return nil, false
	}

	c.logger.Debug("cache.template.get.hit", out.LogFields{
		"templateId": templateID,
	})
	return &template, true
}

func (c *CacheAdapter) StoreTemplate(ctx context.Context, template domain.InterviewTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.template.store", out.LogFields{
		"templateId": template.ID,
	})

	c.templatesCache.Add(template.ID, template)
}

func (c *CacheAdapter) InvalidateTemplate(ctx context.Context, templateID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.templatesCache.Remove(templateID)
}

// Кэширование занятости интервьюеров

func (c *CacheAdapter) GetFreeBusy(ctx context.Context, interviewerID uuid.UUID) (*domain.FreeBusyCalendar, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.freeBusyCache.Get(interviewerID)
	if !exists {
		c.logger.Debug("cache.freebusy.get.miss", out.LogFields{
			"interviewerId": interviewerID,
		})
		return nil, false
	}

	if time.Since(entry.Timestamp) > c.freeBusyTTL {
		c.logger.Debug("cache.freebusy.get.expired", out.LogFields{
			"interviewerId": interviewerID,
			"storedAt":      entry.Timestamp,
		})
		return nil, false
	}

	c.logger.Debug("cache.freebusy.get.hit", out.LogFields{
		"interviewerId": interviewerID,
		"busyCount":     len(entry.Calendar.Busy),
	})
	return &entry.Calendar, true
}

func (c *CacheAdapter) StoreFreeBusy(ctx context.Context, calendar domain.FreeBusyCalendar) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.freebusy.store", out.LogFields{
		"interviewerId": calendar.InterviewerID,
		"busyCount":     len(calendar.Busy),
	})

	c.freeBusyCache.Add(calendar.InterviewerID, &FreeBusyCacheEntry{
		Calendar:  calendar,
		Timestamp: time.Now(),
	})
}

func (c *CacheAdapter) InvalidateFreeBusy(ctx context.Context, interviewerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.freeBusyCache.Remove(interviewerID)
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Info("cache.purge", out.LogFields{
		"templates": c.templatesCache.Len(),
		"freebusy":  c.freeBusyCache.Len(),
	})

	c.templatesCache.Purge()
	c.freeBusyCache.Purge()
}
