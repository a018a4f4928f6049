package domain

import "time"

// AvailabilityQuery — скалярные параметры одного расчета.
// Валидируются один раз перед запуском конвейера.
// Now прокидывается извне, движок сам часы не читает
type AvailabilityQuery struct {
	SearchStart   time.Time
	SearchEnd     time.Time
	WorkStartHour int
	WorkEndHour   int
	Now           time.Time
}

// AvailabilityResult — итог расчета: слоты и свободные окна в хронологическом
// порядке плюс исходные календари для отчетности на стороне контроллера
type AvailabilityResult struct {
	Template      InterviewTemplate
	Interviewers  []Interviewer
	Slots         []Interval
	FreeWindows   []Interval
	BusyCalendars []FreeBusyCalendar
	Debug         []DebugInfo
}
