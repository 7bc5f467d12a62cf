package reservedtimes

import (
	"context"
	"time"
)

// BackendClient интерфейс клиента бэкенда для занятых времен
type BackendClient interface {
	GetReservedStartTimes(ctx context.Context, date time.Time) ([]string, error)
	GetReservedEndTimes(ctx context.Context, date time.Time) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
