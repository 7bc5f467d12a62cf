package kartingbackend

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики вызовов бэкенда
type Metrics interface {
	ObserveBackendCall(operation, outcome string, started time.Time)
}

type nopMetrics struct{}

func (nopMetrics) ObserveBackendCall(string, string, time.Time) {}
