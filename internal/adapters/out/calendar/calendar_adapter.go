package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/interview-availability-service/internal/config"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/out"
)

// CalendarAdapter ходит в календарный сервис за шаблонами интервью
// и занятостью интервьюеров
type CalendarAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

type FreeBusyResponse struct {
	Calendars []domain.FreeBusyCalendar `json:"calendars"`
}

func NewCalendarAdapter(cfg *config.Config, logger out.LoggerPort) *CalendarAdapter {
	return &CalendarAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Calendar.URL,
		username: cfg.Calendar.Username,
		password: cfg.Calendar.Password,
		logger:   logger,
	}
}

func (a *CalendarAdapter) GetInterviewTemplate(ctx context.Context, templateID uuid.UUID) (*domain.InterviewTemplate, error) {
	a.logger.Info("calendar.template.fetch", out.LogFields{
		"templateId": templateID,
	})

	url := fmt.Sprintf("%s/InterviewTemplate/%s", a.baseURL, templateID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("calendar.template.fetch_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("calendar.template.fetch_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		a.logger.Warn("calendar.template.not_found", out.LogFields{
			"templateId": templateID,
		})
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, templateID)
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("calendar.template.fetch_failed", out.LogFields{
			"templateId": templateID,
			"status":     resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var template domain.InterviewTemplate
	if err := json.NewDecoder(resp.Body).Decode(&template); err != nil {
		a.logger.Error("calendar.template.decode_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("calendar.template.fetch_success", out.LogFields{
		"templateId":      templateID,
		"durationMinutes": template.DurationMinutes,
		"interviewers":    len(template.InterviewerIDs),
	})

	return &template, nil
}

func (a *CalendarAdapter) GetFreeBusy(ctx context.Context, interviewerIDs []uuid.UUID) ([]domain.FreeBusyCalendar, error) {
	a.logger.Info("calendar.freebusy.fetch", out.LogFields{
		"interviewers": len(interviewerIDs),
	})

	url := fmt.Sprintf("%s/$free-busy", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("calendar.freebusy.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	ids := make([]string, 0, len(interviewerIDs))
	for _, id := range interviewerIDs {
		ids = append(ids, id.String())
	}

	query := nurl.Values{}
	query.Add("interviewerIds", strings.Join(ids, ","))
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("calendar.freebusy.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("calendar.freebusy.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var freeBusyResponse FreeBusyResponse
	if err := json.NewDecoder(resp.Body).Decode(&freeBusyResponse); err != nil {
		a.logger.Error("calendar.freebusy.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("calendar.freebusy.fetch_success", out.LogFields{
		"calendars": len(freeBusyResponse.Calendars),
	})

	return freeBusyResponse.Calendars, nil
}
