package get_sales_report

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
)

// maxMonths ограничение длины периода отчета
const maxMonths = 24

// validateRequest разбирает период и возвращает первые дни месяцев from и to
func validateRequest(req *Request, loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(domain.MonthFormat, strings.TrimSpace(req.From), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from must be YYYY-MM", ErrInvalidInput)
	}

	to, err := time.ParseInLocation(domain.MonthFormat, strings.TrimSpace(req.To), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to must be YYYY-MM", ErrInvalidInput)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	if monthsBetween(from, to) > maxMonths {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period longer than %d months", ErrInvalidInput, maxMonths)
	}

	return from, to, nil
}

// monthsBetween количество месяцев в периоде включительно
func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
}
