package availability_service

import (
	"sort"
	"time"

	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

// sweepEvent — точка таймлайна со знаком:
// +1 кто-то становится занят, -1 освобождается, 0 граница окна поиска
type sweepEvent struct {
	time  time.Time
	delta int
}

// mergeFreeWindows строит упорядоченный список максимальных свободных окон
// внутри [searchStart, searchEnd): промежутков, где не занят ни один интервьюер.
//
// Развертка: занятые промежутки обрезаются окном поиска, каждая граница дает
// событие со знаком, события сортируются и проходятся слева направо со счетчиком
// занятых. Свободное окно — участок, где счетчик равен нулю
func mergeFreeWindows(busy []domain.Interval, searchStart, searchEnd time.Time) []domain.Interval {
	searchWindow := domain.Interval{Start: searchStart, End: searchEnd}
	events := make([]sweepEvent, 0, len(busy)*2+2)

	for _, interval := range busy {
		// Промежутки вне окна и пустые после обрезки в развертку не попадают
		clipped, ok := searchWindow.Intersect(interval)
		if !ok {
			continue
		}
		events = append(events, sweepEvent{time: clipped.Start, delta: +1})
		events = append(events, sweepEvent{time: clipped.End, delta: -1})
	}

	// Граничные события, чтобы захватить свободу по краям окна поиска
	events = append(events, sweepEvent{time: searchStart, delta: 0})
	events = append(events, sweepEvent{time: searchEnd, delta: 0})

	// Сортировка по (time, delta): при равном времени -1 идет раньше +1,
	// что и дает полуоткрытую семантику — блок, кончающийся в T, и блок,
	// начинающийся в T, не создают ни пересечения, ни свободного мгновения
	sort.Slice(events, func(i, j int) bool {
		if !events[i].time.Equal(events[j].time) {
			return events[i].time.Before(events[j].time)
		}
		return events[i].delta < events[j].delta
	})

	freeWindows := make([]domain.Interval, 0)
	activeBusy := 0
	prevTime := searchStart

	for i := 0; i < len(events); {
		t := events[i].time

		// Если между prevTime и t никто не был занят — это свободное окно.
		// Проверка t > prevTime отсекает "призрачные" окна нулевой ширины
		// на совпадающих границах
		if activeBusy == 0 && t.After(prevTime) {
			freeWindows = append(freeWindows, domain.Interval{Start: prevTime, End: t})
		}

		// Суммируем все дельты в точке t разом
		for i < len(events) && events[i].time.Equal(t) {
			activeBusy += events[i].delta
			i++
		}

		prevTime = t
	}

	return freeWindows
}
