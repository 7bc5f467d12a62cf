package get_client_bookings

import (
	"context"

	"github.com/m04kA/SMC-KartingFront/internal/service/bookings/models"
)

type BookingService interface {
	ListByNationalID(ctx context.Context, nationalID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
