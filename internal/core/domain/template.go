package domain

import (
	"time"

	"github.com/google/uuid"
)

// InterviewTemplate — шаблон интервью: название, длительность и состав интервьюеров
type InterviewTemplate struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	DurationMinutes int         `json:"durationMinutes"`
	InterviewerIDs  []uuid.UUID `json:"interviewerIds"`
}

func (t InterviewTemplate) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}
