package domain

import (
	"time"

	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// BookingStatus статус бронирования на стороне бэкенда
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking бронирование в том виде, в котором его отдает бэкенд
// Используется для поиска по RUT, рэка и отчетов
type Booking struct {
	ID               int64
	BookingDate      time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	SessionProduct   SessionProduct
	NumOfPeople      int
	HolderNationalID string
	Participants     []Participant
	Status           BookingStatus
	TotalAmount      float64
}

// IsActive возвращает true, если бронирование занимает трассу
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed возвращает true, если бронирование можно подтвердить
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// HolderName имя владельца бронирования (первый участник)
func (b *Booking) HolderName() string {
	if len(b.Participants) == 0 {
		return ""
	}
	return b.Participants[0].Name
}
