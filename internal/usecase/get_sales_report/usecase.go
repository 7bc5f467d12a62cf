package get_sales_report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// UseCase use case отчета по продажам
type UseCase struct {
	client BackendClient
	loc    *time.Location
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BackendClient, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		client: client,
		loc:    loc,
		logger: logger,
	}
}

// Execute строит отчет о выручке по месяцам: по продукту и по размеру группы.
// Отмененные бронирования не учитываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	from, to, err := validateRequest(req, uc.loc)
	if err != nil {
		uc.logger.Warn("GetSalesReport: validation failed: %v", err)
		return nil, err
	}

	// Последний день месяца to
	periodEnd := to.AddDate(0, 1, -1)

	uc.logger.Info("GetSalesReport: period %s - %s", from.Format(domain.DateFormat), periodEnd.Format(domain.DateFormat))

	raw, err := uc.client.ListReportBookings(ctx, from, periodEnd)
	if err != nil && !errors.Is(err, kartingbackend.ErrNotFound) {
		uc.logger.Error("GetSalesReport: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	bookings, err := kartingbackend.BookingsToDomain(raw, uc.loc)
	if err != nil {
		uc.logger.Error("GetSalesReport: invalid backend data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	months := make([]string, 0, monthsBetween(from, to))
	monthIndex := make(map[string]int)
	for m := from; !m.After(to); m = m.AddDate(0, 1, 0) {
		key := m.Format(domain.MonthFormat)
		monthIndex[key] = len(months)
		months = append(months, key)
	}

	byProduct := newTable(productLabels(), len(months))
	byGroup := newTable(bucketLabels(), len(months))

	counted := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		col, ok := monthIndex[b.BookingDate.Format(domain.MonthFormat)]
		if !ok {
			continue
		}

		productRow := productIndex(b.SessionProduct)
		groupRow := bucketIndex(b.NumOfPeople)
		if productRow < 0 || groupRow < 0 {
			uc.logger.Warn("GetSalesReport: skipped booking id=%d: laps=%d, people=%d",
				b.ID, int(b.SessionProduct), b.NumOfPeople)
			continue
		}

		byProduct.add(productRow, col, b.TotalAmount)
		byGroup.add(groupRow, col, b.TotalAmount)
		counted++
	}

	uc.logger.Info("GetSalesReport: counted %d of %d bookings, total=%.0f", counted, len(bookings), byProduct.GrandTotal)
	return &Response{
		From:        from,
		To:          periodEnd,
		Months:      months,
		ByProduct:   byProduct,
		ByGroupSize: byGroup,
	}, nil
}

func newTable(labels []string, columns int) Table {
	t := Table{
		Rows:   make([]Row, len(labels)),
		Totals: make([]float64, columns),
	}
	for i, label := range labels {
		t.Rows[i] = Row{Label: label, Values: make([]float64, columns)}
	}
	return t
}

func (t *Table) add(row, col int, amount float64) {
	t.Rows[row].Values[col] += amount
	t.Rows[row].Total += amount
	t.Totals[col] += amount
	t.GrandTotal += amount
}

func productLabels() []string {
	labels := make([]string, len(domain.SessionProducts))
	for i, p := range domain.SessionProducts {
		labels[i] = strconv.Itoa(int(p))
	}
	return labels
}

func productIndex(p domain.SessionProduct) int {
	for i, candidate := range domain.SessionProducts {
		if candidate == p {
			return i
		}
	}
	return -1
}

func bucketLabels() []string {
	labels := make([]string, len(groupBuckets))
	for i, b := range groupBuckets {
		labels[i] = b.label
	}
	return labels
}

func bucketIndex(people int) int {
	for i, b := range groupBuckets {
		if people >= b.min && people <= b.max {
			return i
		}
	}
	return -1
}
