package get_sales_report

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// BackendClient интерфейс клиента бэкенда для отчетов
type BackendClient interface {
	ListReportBookings(ctx context.Context, from, to time.Time) ([]kartingbackend.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
