package reservedtimes

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/service/availability"
)

// Service получает занятые интервалы трассы на дату
type Service struct {
	client  BackendClient
	timeout time.Duration
	logger  Logger
}

// NewService создает сервис. timeout ограничивает пару запросов целиком (0 = без ограничения)
func NewService(client BackendClient, timeout time.Duration, logger Logger) *Service {
	return &Service{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch запрашивает времена начала и окончания параллельно и собирает интервалы.
// Ошибка любого из запросов - ошибка всей пары
func (s *Service) Fetch(ctx context.Context, date time.Time, durationMinutes int) ([]domain.ReservedInterval, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var starts, ends []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		starts, err = s.client.GetReservedStartTimes(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		ends, err = s.client.GetReservedEndTimes(gctx, date)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("ReservedTimes: fetch failed for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if len(ends) > len(starts) {
		s.logger.Warn("ReservedTimes: date=%s has %d end times for %d start times, extra ignored",
			date.Format(domain.DateFormat), len(ends), len(starts))
	}

	intervals, err := availability.BuildReservedIntervals(date, starts, ends, durationMinutes)
	if err != nil {
		s.logger.Error("ReservedTimes: invalid data for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	s.logger.Info("ReservedTimes: date=%s, reserved=%d", date.Format(domain.DateFormat), len(intervals))
	return intervals, nil
}
