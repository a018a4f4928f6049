package availability_service

import (
	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/utils"
)

// collectBusyIntervals сводит занятость всех интервьюеров в один плоский список
// промежутков на канонической UTC-шкале. Кому принадлежит промежуток дальше
// не важно: доступность — свойство объединения.
//
// Промежутки нулевой ширины (start == end) сохраняются, в развертке они
// взаимно сокращаются. Перевернутые промежутки — мусор источника, пропускаем
func collectBusyIntervals(calendars []domain.FreeBusyCalendar) ([]domain.Interval, error) {
	intervals := make([]domain.Interval, 0)

	for _, calendar := range calendars {
		for _, period := range calendar.Busy {
			if period.Start == "" || period.End == "" {
				continue
			}

			start, err := utils.ParseTimestamp(period.Start)
			if err != nil {
				return nil, err
			}
			end, err := utils.ParseTimestamp(period.End)
			if err != nil {
				return nil, err
			}

			if end.Before(start) {
				continue
			}

			intervals = append(intervals, domain.Interval{Start: start, End: end})
		}
	}

	return intervals, nil
}
