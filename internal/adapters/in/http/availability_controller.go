package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/interview-availability-service/internal/config"
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/core/ports/in"
	"github.com/suchimauz/interview-availability-service/internal/utils"
)

type AvailabilityController struct {
	useCase in.AvailabilityUseCase
	cfg     *config.Config
}

func NewAvailabilityController(useCase in.AvailabilityUseCase, cfg *config.Config) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/interviews/:interviewId/available-slots", c.availableSlots)
	}
}

type HumanReadableInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type HumanReadableBusy struct {
	InterviewerID uuid.UUID               `json:"interviewerId"`
	Name          string                  `json:"name"`
	BusyTimes     []HumanReadableInterval `json:"busyTimes"`
}

// Параметры start/end/start_hour/end_hour опциональны, дефолты из конфига:
// окно поиска [now + упреждение, + N дней], рабочие часы 9-17
func (c *AvailabilityController) availableSlots(ctx *gin.Context) {
	templateID, err := uuid.Parse(ctx.Param("interviewId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID format"})
		return
	}

	now := time.Now().UTC()
	earliestAllowed := now.Add(time.Duration(c.cfg.Availability.LeadHours) * time.Hour)

	searchStart := earliestAllowed
	if raw := ctx.Query("start"); raw != "" {
		searchStart, err = utils.ParseTimestamp(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
			return
		}
	}

	searchEnd := searchStart.AddDate(0, 0, c.cfg.Availability.SearchDays)
	if raw := ctx.Query("end"); raw != "" {
		searchEnd, err = utils.ParseTimestamp(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
			return
		}
	}

	workStartHour := c.cfg.Availability.WorkStartHour
	if raw := ctx.Query("start_hour"); raw != "" {
		workStartHour, err = strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_hour format"})
			return
		}
	}

	workEndHour := c.cfg.Availability.WorkEndHour
	if raw := ctx.Query("end_hour"); raw != "" {
		workEndHour, err = strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_hour format"})
			return
		}
	}

	result, err := c.useCase.ComputeAvailability(ctx.Request.Context(), templateID, domain.AvailabilityQuery{
		SearchStart:   searchStart,
		SearchEnd:     searchEnd,
		WorkStartHour: workStartHour,
		WorkEndHour:   workEndHour,
		Now:           now,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTemplateNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Interview template not found"})
		case errors.Is(err, domain.ErrInvalidRange),
			errors.Is(err, domain.ErrInvalidWorkHours),
			errors.Is(err, domain.ErrMalformedTimestamp):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	payload := gin.H{
		"interviewId":     result.Template.ID,
		"name":            result.Template.Name,
		"durationMinutes": result.Template.DurationMinutes,
		"interviewers":    result.Interviewers,
		"availableSlots":  result.Slots,
		"freeWindows":     result.FreeWindows,
		"workHours": gin.H{
			"startHour": workStartHour,
			"endHour":   workEndHour,
		},
		"humanReadable": gin.H{
			"availableSlots":       humanReadableSlots(result.Slots),
			"interviewerBusyTimes": humanReadableBusyTimes(result.BusyCalendars),
			"workHours":            fmt.Sprintf("%d:00 - %d:00", workStartHour, workEndHour),
		},
	}

	if ctx.Query("debug") == "true" {
		payload["debug"] = result.Debug
	}

	ctx.JSON(http.StatusOK, payload)
}

func humanReadableSlots(slots []domain.Interval) []HumanReadableInterval {
	readable := make([]HumanReadableInterval, 0, len(slots))
	for _, slot := range slots {
		readable = append(readable, HumanReadableInterval{
			Start: utils.FormatHuman(slot.Start),
			End:   utils.FormatHuman(slot.End),
		})
	}
	return readable
}

// Зеркало занятости для отладки и UI. Блоки, которые не удалось распарсить,
// просто пропускаются: наружу они уже не влияют
func humanReadableBusyTimes(calendars []domain.FreeBusyCalendar) []HumanReadableBusy {
	readable := make([]HumanReadableBusy, 0, len(calendars))
	for _, calendar := range calendars {
		busy := HumanReadableBusy{
			InterviewerID: calendar.InterviewerID,
			Name:          calendar.Name,
			BusyTimes:     make([]HumanReadableInterval, 0, len(calendar.Busy)),
		}
		for _, period := range calendar.Busy {
			start, err := utils.ParseTimestamp(period.Start)
			if err != nil {
				continue
			}
			end, err := utils.ParseTimestamp(period.End)
			if err != nil {
				continue
			}
			busy.BusyTimes = append(busy.BusyTimes, HumanReadableInterval{
				Start: utils.FormatHuman(start),
				End:   utils.FormatHuman(end),
			})
		}
		readable = append(readable, busy)
	}
	return readable
}

func (c *AvailabilityController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
