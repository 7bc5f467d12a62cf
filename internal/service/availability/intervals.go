package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// BuildReservedIntervals собирает занятые интервалы из параллельных списков HH:MM.
// Списки сопоставляются по индексу; если конца нет (или он пустой),
// конец = старт + durationMinutes
func BuildReservedIntervals(date time.Time, starts, ends []string, durationMinutes int) ([]domain.ReservedInterval, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}

	intervals := make([]domain.ReservedInterval, 0, len(starts))

	for i, s := range starts {
		start, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: start[%d]=%q", ErrInvalidTime, i, s)
		}
		startAt := start.On(date)

		endAt := ComputeEndTime(startAt, durationMinutes)
		derived := true
		if i < len(ends) && ends[i] != "" {
			end, err := types.NewTimeStringFromString(ends[i])
			if err != nil {
				return nil, fmt.Errorf("%w: end[%d]=%q", ErrInvalidTime, i, ends[i])
			}
			endAt = end.On(date)
			derived = false
		}

		intervals = append(intervals, domain.ReservedInterval{Start: startAt, End: endAt, EndDerived: derived})
	}

	return intervals, nil
}
