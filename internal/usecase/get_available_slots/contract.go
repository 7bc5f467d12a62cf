package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// ReservedTimesService сервис занятых интервалов трассы
type ReservedTimesService interface {
	Fetch(ctx context.Context, date time.Time, durationMinutes int) ([]domain.ReservedInterval, error)
}

// AvailabilityEngine движок доступности
type AvailabilityEngine interface {
	ClassifyDay(date time.Time) domain.DayClass
	OpeningHours(date time.Time) (open, closing types.TimeString)
	EnumerateBookableTimesInHour(date time.Time, hour int, durationMinutes int, reserved []domain.ReservedInterval) []time.Time
	HourGroups(date time.Time, durationMinutes int, reserved []domain.ReservedInterval) []domain.HourGroup
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
