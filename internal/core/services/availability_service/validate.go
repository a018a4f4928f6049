package availability_service

import (
	"fmt"

	"github.com/suchimauz/interview-availability-service/internal/core/domain"
)

// validateQuery проверяет скалярные параметры до запуска конвейера.
// Остальные этапы повторно их не проверяют
func validateQuery(query domain.AvailabilityQuery) error {
	if !query.SearchEnd.After(query.SearchStart) {
		return domain.ErrInvalidRange
	}

	if query.WorkStartHour < 0 || query.WorkStartHour > 23 {
		return fmt.Errorf("%w: start hour %d is out of [0,23]", domain.ErrInvalidWorkHours, query.WorkStartHour)
	}
	if query.WorkEndHour < 0 || query.WorkEndHour > 23 {
		return fmt.Errorf("%w: end hour %d is out of [0,23]", domain.ErrInvalidWorkHours, query.WorkEndHour)
	}
	if query.WorkStartHour >= query.WorkEndHour {
		return fmt.Errorf("%w: start hour %d is not before end hour %d", domain.ErrInvalidWorkHours, query.WorkStartHour, query.WorkEndHour)
	}

	return nil
}
