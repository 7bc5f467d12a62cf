package bookings

import (
	"context"

	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// BackendClient интерфейс клиента бэкенда трассы
type BackendClient interface {
	ConfirmBooking(ctx context.Context, id int64) (*kartingbackend.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*kartingbackend.Booking, error)
	ListBookingsByNationalID(ctx context.Context, nationalID string) ([]kartingbackend.Booking, error)
	SendVoucher(ctx context.Context, bookingID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
