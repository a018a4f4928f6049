package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

type Interviewer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RawBusyPeriod — занятый промежуток в том виде, в котором его отдал провайдер.
// Метки времени остаются строками до нормализатора: источники присылают их
// то с таймзоной, то без
type RawBusyPeriod struct {
	Start string
	End   string
}

// Провайдеры присылают границы то как start/end, то как startTime/endTime
func (p *RawBusyPeriod) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start     string `json:"start"`
		End       string `json:"end"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Start = raw.Start
	if p.Start == "" {
		p.Start = raw.StartTime
	}
	p.End = raw.End
	if p.End == "" {
		p.End = raw.EndTime
	}

	return nil
}

func (p RawBusyPeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}{Start: p.Start, End: p.End})
}

// FreeBusyCalendar — занятость одного интервьюера
type FreeBusyCalendar struct {
	InterviewerID uuid.UUID       `json:"interviewerId"`
	Name          string          `json:"name"`
	Busy          []RawBusyPeriod `json:"busy"`
}
