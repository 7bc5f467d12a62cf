package get_rack_week

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// BackendClient интерфейс клиента бэкенда для рэка
type BackendClient interface {
	ListBookingsForRackPeriod(ctx context.Context, month time.Month, year int) ([]kartingbackend.Booking, error)
}

// AvailabilityEngine часы работы и тип дня
type AvailabilityEngine interface {
	ClassifyDay(date time.Time) domain.DayClass
	OpeningHours(date time.Time) (open, closing types.TimeString)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
