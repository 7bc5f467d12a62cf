package reservation_flow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// ReservedTimesService сервис занятых интервалов трассы
type ReservedTimesService interface {
	Fetch(ctx context.Context, date time.Time, durationMinutes int) ([]domain.ReservedInterval, error)
}

// AvailabilityEngine движок доступности
type AvailabilityEngine interface {
	IsSlotBlocked(candidateStart time.Time, durationMinutes int, reserved []domain.ReservedInterval) bool
}

// BackendClient интерфейс клиента бэкенда для отправки бронирования
type BackendClient interface {
	SubmitBooking(ctx context.Context, req *kartingbackend.SubmitBookingRequest) (*kartingbackend.Booking, error)
}

// SessionStore хранилище черновиков
type SessionStore interface {
	Save(c *Controller)
	Get(id string) (*Controller, error)
	Delete(id string) error
}

// Metrics метрики потока бронирования
type Metrics interface {
	IncStaleResponses()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) IncStaleResponses() {}
