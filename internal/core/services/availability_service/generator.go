package availability_service

import (
	"time"

	"github.com/suchimauz/interview-availability-service/internal/core/domain"
	"github.com/suchimauz/interview-availability-service/internal/utils"
)

// Кандидаты всегда начинаются на границе :00 или :30
const slotStep = 30 * time.Minute

// generateSlots разворачивает свободные окна в кандидатов фиксированной
// длительности. Окна уже упорядочены и обход внутри окна монотонный,
// поэтому дополнительная сортировка не нужна.
//
// minSlotStart — нижняя граница старта (правило минимального упреждения),
// уже выровненная на полчаса. Засевается в начало обхода, а не фильтрует
// постфактум: окна целиком до границы отпадают сами
func generateSlots(freeWindows []domain.Interval, duration time.Duration, workStartHour, workEndHour int, minSlotStart time.Time) []domain.Interval {
	slots := make([]domain.Interval, 0)

	for _, window := range freeWindows {
		slotStart := window.Start
		if minSlotStart.After(slotStart) {
			slotStart = minSlotStart
		}
		slotStart = utils.CeilToHalfHour(slotStart)

		// Последний старт, при котором слот еще помещается в окно.
		// Если он раньше кандидата — окно слишком короткое
		lastValidStart := window.End.Add(-duration)

		for !slotStart.After(lastValidStart) {
			slotEnd := slotStart.Add(duration)

			if isWithinWorkday(slotStart, slotEnd, workStartHour, workEndHour) {
				slots = append(slots, domain.Interval{Start: slotStart, End: slotEnd})
			}

			slotStart = slotStart.Add(slotStep)
		}
	}

	return slots
}

// isWithinWorkday — слот целиком внутри рабочего окна своего UTC-дня:
// [workStartHour:00, workEndHour:00]. Закончиться ровно в workEndHour можно.
// Слоты через полночь или за пределами окна отбрасываются, не усекаются
func isWithinWorkday(slotStart, slotEnd time.Time, workStartHour, workEndHour int) bool {
	slotStart = slotStart.UTC()
	slotEnd = slotEnd.UTC()

	dayOpen := time.Date(slotStart.Year(), slotStart.Month(), slotStart.Day(), workStartHour, 0, 0, 0, time.UTC)
	dayClose := time.Date(slotStart.Year(), slotStart.Month(), slotStart.Day(), workEndHour, 0, 0, 0, time.UTC)

	return !slotStart.Before(dayOpen) && !slotEnd.After(dayClose)
}
