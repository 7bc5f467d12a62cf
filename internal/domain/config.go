package domain

import (
	"time"

	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// DayClass классификация дня для выбора часов работы
type DayClass string

const (
	DayWeekday          DayClass = "weekday"
	DayWeekendOrHoliday DayClass = "weekend_or_holiday"
)

// OperatingHours часы работы трассы по классификации дня
// Интервал [Open, Close) - закрытие не включается
type OperatingHours struct {
	WeekdayOpen          types.TimeString
	WeekendOrHolidayOpen types.TimeString
	Close                types.TimeString
}

// DefaultOperatingHours часы работы трассы
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{
		WeekdayOpen:          types.MustFromString(DefaultWeekdayOpen),
		WeekendOrHolidayOpen: types.MustFromString(DefaultWeekendOpen),
		Close:                types.MustFromString(DefaultClose),
	}
}

// OpenFor возвращает время открытия для классификации дня
func (h OperatingHours) OpenFor(class DayClass) types.TimeString {
	if class == DayWeekendOrHoliday {
		return h.WeekendOrHolidayOpen
	}
	return h.WeekdayOpen
}

// HolidayCalendar набор ежегодных праздников в формате MM-DD (без года)
type HolidayCalendar map[string]struct{}

// NewHolidayCalendar создает календарь из списка MM-DD.
// Некорректные значения возвращают ошибку.
func NewHolidayCalendar(days []string) (HolidayCalendar, error) {
	cal := make(HolidayCalendar, len(days))
	for _, d := range days {
		if _, err := time.Parse(MonthDayFormat, d); err != nil {
			return nil, err
		}
		cal[d] = struct{}{}
	}
	return cal, nil
}

// DefaultHolidayCalendar календарь праздников по умолчанию
func DefaultHolidayCalendar() HolidayCalendar {
	cal, _ := NewHolidayCalendar(DefaultHolidays)
	return cal
}

// Contains проверяет, есть ли MM-DD в календаре
func (c HolidayCalendar) Contains(monthDay string) bool {
	_, ok := c[monthDay]
	return ok
}
