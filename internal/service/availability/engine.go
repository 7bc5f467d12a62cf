package availability

import (
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// Engine вычисляет доступные для бронирования времена старта.
// Не хранит состояния между вызовами и безопасен для конкурентного использования
type Engine struct {
	hours    domain.OperatingHours
	holidays Calendar
}

// NewEngine создает движок доступности
func NewEngine(hours domain.OperatingHours, holidays Calendar) *Engine {
	return &Engine{
		hours:    hours,
		holidays: holidays,
	}
}

// NewDefaultEngine движок с часами работы и праздниками по умолчанию
func NewDefaultEngine() *Engine {
	return NewEngine(domain.DefaultOperatingHours(), domain.DefaultHolidayCalendar())
}

// IsHoliday проверяет MM-DD даты по календарю праздников, без учета года
func (e *Engine) IsHoliday(date time.Time) bool {
	return e.holidays.Contains(date.Format(domain.MonthDayFormat))
}

// ClassifyDay выходной или праздник - weekend_or_holiday, иначе weekday
func (e *Engine) ClassifyDay(date time.Time) domain.DayClass {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return domain.DayWeekendOrHoliday
	}
	if e.IsHoliday(date) {
		return domain.DayWeekendOrHoliday
	}
	return domain.DayWeekday
}

// OpeningHours возвращает [open, closing) для даты
func (e *Engine) OpeningHours(date time.Time) (open, closing types.TimeString) {
	return e.hours.OpenFor(e.ClassifyDay(date)), e.hours.Close
}

// ComputeEndTime конец заезда. Переход через полночь не обрабатывается
func ComputeEndTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

// IsSlotBlocked возвращает true, если старт в candidateStart недопустим.
//
// Нулевой candidateStart (дата не выбрана) всегда заблокирован.
// Интервалы бронирований полуоткрытые: старт ровно в конце чужого заезда
// и конец ровно в начале чужого заезда допустимы.
func (e *Engine) IsSlotBlocked(candidateStart time.Time, durationMinutes int, reserved []domain.ReservedInterval) bool {
	if candidateStart.IsZero() {
		return true
	}

	open, closing := e.OpeningHours(candidateStart)
	minute := types.NewTimeString(candidateStart)
	if minute.IsBefore(open) || !minute.IsBefore(closing) {
		return true
	}

	candidateEnd := ComputeEndTime(candidateStart, durationMinutes)

	for _, r := range reserved {
		if r.Contains(candidateStart) {
			return true
		}
		// Заезд начинается раньше брони, но заходит на ее начало
		if candidateStart.Before(r.Start) && candidateEnd.After(r.Start) {
			return true
		}
	}

	return false
}

// EnumerateBookableTimes возвращает по возрастанию все минутные старты в часы работы,
// которые не заблокированы. Для нулевой даты - пустой список
func (e *Engine) EnumerateBookableTimes(date time.Time, durationMinutes int, reserved []domain.ReservedInterval) []time.Time {
	if date.IsZero() {
		return []time.Time{}
	}

	open, closing := e.OpeningHours(date)
	return e.enumerate(date, open.Minutes(), closing.Minutes(), durationMinutes, reserved)
}

// EnumerateBookableTimesInHour то же, что EnumerateBookableTimes, но только для одного часа.
// Час вне часов работы дает пустой список
func (e *Engine) EnumerateBookableTimesInHour(date time.Time, hour int, durationMinutes int, reserved []domain.ReservedInterval) []time.Time {
	if date.IsZero() || hour < 0 || hour > 23 {
		return []time.Time{}
	}

	open, closing := e.OpeningHours(date)
	from := max(hour*60, open.Minutes())
	to := min((hour+1)*60, closing.Minutes())

	return e.enumerate(date, from, to, durationMinutes, reserved)
}

// HourGroups количество доступных стартов по каждому часу работы
func (e *Engine) HourGroups(date time.Time, durationMinutes int, reserved []domain.ReservedInterval) []domain.HourGroup {
	if date.IsZero() {
		return []domain.HourGroup{}
	}

	open, closing := e.OpeningHours(date)
	groups := make([]domain.HourGroup, 0, closing.Hour()-open.Hour()+1)

	for hour := open.Hour(); hour*60 < closing.Minutes(); hour++ {
		n := len(e.EnumerateBookableTimesInHour(date, hour, durationMinutes, reserved))
		groups = append(groups, domain.HourGroup{
			Hour:      hour,
			Bookable:  n,
			Available: n > 0,
		})
	}

	return groups
}

// enumerate перебирает минуты [fromMinute, toMinute) дня date
func (e *Engine) enumerate(date time.Time, fromMinute, toMinute int, durationMinutes int, reserved []domain.ReservedInterval) []time.Time {
	times := make([]time.Time, 0)
	y, m, d := date.Date()

	for minute := fromMinute; minute < toMinute; minute++ {
		candidate := time.Date(y, m, d, minute/60, minute%60, 0, 0, date.Location())
		if !e.IsSlotBlocked(candidate, durationMinutes, reserved) {
			times = append(times, candidate)
		}
	}

	return times
}
