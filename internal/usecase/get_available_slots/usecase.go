package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// UseCase use case для получения доступных времен старта на дату
type UseCase struct {
	reservedTimes ReservedTimesService
	engine        AvailabilityEngine
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservedTimes ReservedTimesService, engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		reservedTimes: reservedTimes,
		engine:        engine,
		logger:        logger,
	}
}

// Execute выполняет use case.
// Без часа возвращает группы по часам, с часом - минутные старты этого часа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, laps=%d", req.Date.Format(domain.DateFormat), req.SessionProduct)

	// 1. Валидация входных данных
	product, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	duration, _ := product.BlockDuration()

	// 2. Получаем занятые интервалы
	reserved, err := uc.reservedTimes.Fetch(ctx, req.Date, duration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch reserved times: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	open, closing := uc.engine.OpeningHours(req.Date)
	resp := &Response{
		Date:            req.Date,
		SessionProduct:  product,
		DurationMinutes: duration,
		DayClass:        uc.engine.ClassifyDay(req.Date),
		Open:            open,
		Close:           closing,
		Hour:            req.Hour,
	}

	// 3. Вычисляем доступность
	if req.Hour == nil {
		resp.HourGroups = uc.engine.HourGroups(req.Date, duration, reserved)
		uc.logger.Info("GetAvailableSlots: date=%s, hour groups=%d", req.Date.Format(domain.DateFormat), len(resp.HourGroups))
		return resp, nil
	}

	times := uc.engine.EnumerateBookableTimesInHour(req.Date, *req.Hour, duration, reserved)
	resp.Times = make([]types.TimeString, len(times))
	for i, t := range times {
		resp.Times[i] = types.NewTimeString(t)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, hour=%d, bookable=%d",
		req.Date.Format(domain.DateFormat), *req.Hour, len(resp.Times))
	return resp, nil
}
