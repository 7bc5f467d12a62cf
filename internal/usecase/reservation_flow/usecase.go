package reservation_flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UseCase управляет черновиками бронирования в хранилище сессий
type UseCase struct {
	store SessionStore
	deps  Dependencies
}

// NewUseCase создает новый use case потока бронирования
func NewUseCase(store SessionStore, deps Dependencies) *UseCase {
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	if deps.TimeProvider == nil {
		deps.TimeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		store: store,
		deps:  deps,
	}
}

// Start создает новый черновик
func (uc *UseCase) Start() *State {
	c := NewController(uuid.NewString(), uc.deps)
	uc.store.Save(c)

	uc.deps.Logger.Info("ReservationFlow - Start: draft %s created", c.ID())
	return c.State()
}

// Get возвращает состояние черновика
func (uc *UseCase) Get(id string) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.State(), nil
}

// SetActivity задает продукт и количество участников
func (uc *UseCase) SetActivity(id string, req ActivityRequest) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.SetActivity(req)
}

// SelectDate выбирает дату и загружает занятые интервалы
func (uc *UseCase) SelectDate(ctx context.Context, id string, date time.Time) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.SelectDate(ctx, date)
}

// SelectTime выбирает время старта
func (uc *UseCase) SelectTime(id string, req TimeRequest) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.SelectTime(req)
}

// AddParticipant добавляет участника
func (uc *UseCase) AddParticipant(id string, req ParticipantRequest) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.AddParticipant(req)
}

// RemoveParticipant удаляет участника по позиции
func (uc *UseCase) RemoveParticipant(id string, index int) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.RemoveParticipant(index)
}

// Next переходит на следующий шаг
func (uc *UseCase) Next(id string) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.Next()
}

// Back возвращается на предыдущий шаг
func (uc *UseCase) Back(id string) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.Back()
}

// Submit отправляет черновик в бэкенд
func (uc *UseCase) Submit(ctx context.Context, id string) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx)
}

// Abandon завершает поток и удаляет черновик из хранилища
func (uc *UseCase) Abandon(id string) (*State, error) {
	c, err := uc.controller(id)
	if err != nil {
		return nil, err
	}

	state, err := c.Abandon()
	if err != nil {
		return state, err
	}

	if err := uc.store.Delete(id); err != nil {
		uc.deps.Logger.Warn("ReservationFlow - Abandon: failed to delete draft %s: %v", id, err)
	}
	return state, nil
}

func (uc *UseCase) controller(id string) (*Controller, error) {
	c, err := uc.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDraftNotFound, id)
	}
	return c, nil
}
