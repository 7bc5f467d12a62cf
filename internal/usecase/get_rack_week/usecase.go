package get_rack_week

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// UseCase use case недельного рэка трассы
type UseCase struct {
	client BackendClient
	engine AvailabilityEngine
	loc    *time.Location
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BackendClient, engine AvailabilityEngine, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		client: client,
		engine: engine,
		loc:    loc,
		logger: logger,
	}
}

type period struct {
	month time.Month
	year  int
}

// Execute строит рэк недели, в которую попадает дата.
// Неделя может захватывать два месяца - они запрашиваются параллельно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	monday := weekStart(req.Date)
	sunday := monday.AddDate(0, 0, 6)

	uc.logger.Info("GetRackWeek: week %s - %s", monday.Format(domain.DateFormat), sunday.Format(domain.DateFormat))

	periods := []period{{month: monday.Month(), year: monday.Year()}}
	if sunday.Month() != monday.Month() {
		periods = append(periods, period{month: sunday.Month(), year: sunday.Year()})
	}

	raw, err := uc.fetch(ctx, periods)
	if err != nil {
		return nil, err
	}

	bookings, err := kartingbackend.BookingsToDomain(raw, uc.loc)
	if err != nil {
		uc.logger.Error("GetRackWeek: invalid backend data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		WeekStart: monday,
		WeekEnd:   sunday,
	}
	for i := range resp.Days {
		date := monday.AddDate(0, 0, i)
		open, closing := uc.engine.OpeningHours(date)
		resp.Days[i] = Day{
			Date:     date,
			DayClass: uc.engine.ClassifyDay(date),
			Open:     open,
			Close:    closing,
			Entries:  []Entry{},
		}
	}

	placed := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		idx := dayIndex(monday, b.BookingDate)
		if idx < 0 || idx > 6 {
			continue
		}
		resp.Days[idx].Entries = append(resp.Days[idx].Entries, Entry{
			BookingID:      b.ID,
			StartTime:      b.StartTime,
			EndTime:        b.EndTime,
			SessionProduct: b.SessionProduct,
			NumOfPeople:    b.NumOfPeople,
			HolderName:     b.HolderName(),
			Status:         b.Status,
		})
		placed++
	}

	for i := range resp.Days {
		entries := resp.Days[i].Entries
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].StartTime.IsBefore(entries[b].StartTime)
		})
	}

	uc.logger.Info("GetRackWeek: week %s, bookings placed=%d", monday.Format(domain.DateFormat), placed)
	return resp, nil
}

func (uc *UseCase) fetch(ctx context.Context, periods []period) ([]kartingbackend.Booking, error) {
	var (
		mu  sync.Mutex
		all []kartingbackend.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range periods {
		g.Go(func() error {
			list, err := uc.client.ListBookingsForRackPeriod(gctx, p.month, p.year)
			if err != nil {
				if errors.Is(err, kartingbackend.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("rack %04d-%02d: %w", p.year, int(p.month), err)
			}
			mu.Lock()
			all = append(all, list...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetRackWeek: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return all, nil
}

// weekStart понедельник недели, в которую попадает дата
func weekStart(date time.Time) time.Time {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// dayIndex номер дня недели относительно понедельника, по календарной дате
func dayIndex(monday, date time.Time) int {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, monday.Location())
	return int(math.Round(day.Sub(monday).Hours() / 24))
}
