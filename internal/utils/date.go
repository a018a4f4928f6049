package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

// ParseTimestamp нормализует входную метку времени к UTC.
// Принимает RFC3339 (с Z или со смещением), дату со временем без таймзоны
// (трактуется как UTC) и дату без времени
func ParseTimestamp(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedTimestamp, str)
			}
		}
	}

	return parsedDate.UTC(), nil
}

// CeilToHalfHour округляет время вверх до ближайшей границы :00 или :30.
//
//	12:00:00 -> 12:00
//	12:00:01 -> 12:30
//	12:30:00 -> 12:30
//	12:30:01 -> 13:00
func CeilToHalfHour(t time.Time) time.Time {
	t = t.UTC()
	if t.Second() != 0 || t.Nanosecond() != 0 {
		t = t.Truncate(time.Minute).Add(time.Minute)
	}
	if remainder := t.Minute() % 30; remainder != 0 {
		t = t.Add(time.Duration(30-remainder) * time.Minute)
	}
	return t
}

// FormatUTC сериализует момент в канонический вид с суффиксом Z
func FormatUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// FormatHuman форматирует момент в человекочитаемую строку
// вида "Monday, January 2, 2006 at 3:04 PM"
func FormatHuman(t time.Time) string {
	return t.UTC().Format("Monday, January 2, 2006 at 3:04 PM")
}
