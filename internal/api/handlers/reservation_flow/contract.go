package reservation_flow

import (
	"context"
	"time"

	reservationFlow "github.com/m04kA/SMC-KartingFront/internal/usecase/reservation_flow"
)

type ReservationFlowUseCase interface {
	Start() *reservationFlow.State
	Get(id string) (*reservationFlow.State, error)
	SetActivity(id string, req reservationFlow.ActivityRequest) (*reservationFlow.State, error)
	SelectDate(ctx context.Context, id string, date time.Time) (*reservationFlow.State, error)
	SelectTime(id string, req reservationFlow.TimeRequest) (*reservationFlow.State, error)
	AddParticipant(id string, req reservationFlow.ParticipantRequest) (*reservationFlow.State, error)
	RemoveParticipant(id string, index int) (*reservationFlow.State, error)
	Next(id string) (*reservationFlow.State, error)
	Back(id string) (*reservationFlow.State, error)
	Submit(ctx context.Context, id string) (*reservationFlow.State, error)
	Abandon(id string) (*reservationFlow.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
