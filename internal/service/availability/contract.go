package availability

import "github.com/m04kA/SMC-KartingFront/internal/domain"

// Calendar источник праздничных дней
type Calendar interface {
	Contains(monthDay string) bool
}

var _ Calendar = domain.HolidayCalendar(nil)
