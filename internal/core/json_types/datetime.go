package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

func parseDateTime(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось, пробуем дату со временем, но без таймзоны.
	// Даты без таймзоны трактуем как UTC: вся шкала сервиса каноническая
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse datetime: %v", err)
			}
		}
	}

	return parsedDate.UTC(), nil
}

// DateTime — момент на канонической UTC-шкале.
// Наружу всегда сериализуется с суффиксом Z
type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDateTime(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.UTC().Format("2006-01-02T15:04:05Z"))
}
