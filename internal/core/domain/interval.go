package domain

import (
	"encoding/json"
	"time"

	"github.com/suchimauz/interview-availability-service/internal/core/json_types"
)

// Interval — полуоткрытый промежуток [Start, End) на канонической UTC-шкале.
// Два промежутка, соприкасающиеся границами, не пересекаются
type Interval struct {
	Start time.Time
	End   time.Time
}

// Intersect возвращает пересечение с other.
// Пустое пересечение (в том числе нулевой ширины) считается отсутствующим
func (i Interval) Intersect(other Interval) (Interval, bool) {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	if !start.Before(end) {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start json_types.DateTime `json:"start"`
		End   json_types.DateTime `json:"end"`
	}{
		Start: json_types.DateTime{Date: i.Start},
		End:   json_types.DateTime{Date: i.End},
	})
}

func (i *Interval) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start json_types.DateTime `json:"start"`
		End   json_types.DateTime `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Interval{Start: raw.Start.Date, End: raw.End.Date}
	return nil
}
