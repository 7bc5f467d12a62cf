package kartingbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
)

const maxErrorBodySize = 64 << 10

// Client клиент для работы с бэкендом картинга
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда.
// metrics может быть nil
func NewClient(baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// GetReservedStartTimes получает времена начала бронирований на дату (HH:MM по возрастанию)
func (c *Client) GetReservedStartTimes(ctx context.Context, date time.Time) ([]string, error) {
	var times []string
	query := url.Values{"date": {date.Format(domain.DateFormat)}}
	if err := c.do(ctx, "reserved_start_times", http.MethodGet, "/api/v1/bookings/reserved-times", query, nil, &times); err != nil {
		return nil, err
	}
	return normalizeTimes(times), nil
}

// GetReservedEndTimes получает времена окончания бронирований на дату.
// Список сопоставлен по индексу со временами начала и может быть короче
func (c *Client) GetReservedEndTimes(ctx context.Context, date time.Time) ([]string, error) {
	var times []string
	query := url.Values{"date": {date.Format(domain.DateFormat)}}
	if err := c.do(ctx, "reserved_end_times", http.MethodGet, "/api/v1/bookings/reserved-end-times", query, nil, &times); err != nil {
		return nil, err
	}
	return normalizeTimes(times), nil
}

// SubmitBooking отправляет бронирование
func (c *Client) SubmitBooking(ctx context.Context, req *SubmitBookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.do(ctx, "submit_booking", http.MethodPost, "/api/v1/bookings/", nil, req, &booking); err != nil {
		return nil, err
	}
	c.log.Info("Booking submitted: id=%d, date=%s, time=%s", booking.ID, req.BookingDate, req.BookingTime)
	return &booking, nil
}

// ConfirmBooking подтверждает бронирование
func (c *Client) ConfirmBooking(ctx context.Context, id int64) (*Booking, error) {
	var booking Booking
	path := fmt.Sprintf("/api/v1/bookings/%d/confirm", id)
	if err := c.do(ctx, "confirm_booking", http.MethodPut, path, nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking отменяет бронирование
func (c *Client) CancelBooking(ctx context.Context, id int64) (*Booking, error) {
	var booking Booking
	path := fmt.Sprintf("/api/v1/bookings/%d/cancel", id)
	if err := c.do(ctx, "cancel_booking", http.MethodPut, path, nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookingsByNationalID бронирования клиента по RUT
func (c *Client) ListBookingsByNationalID(ctx context.Context, nationalID string) ([]Booking, error) {
	var list []Booking
	path := "/api/v1/bookings/client/" + url.PathEscape(nationalID)
	if err := c.do(ctx, "list_client_bookings", http.MethodGet, path, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListBookingsForRackPeriod бронирования за месяц для рэка
func (c *Client) ListBookingsForRackPeriod(ctx context.Context, month time.Month, year int) ([]Booking, error) {
	var list []Booking
	query := url.Values{
		"month": {strconv.Itoa(int(month))},
		"year":  {strconv.Itoa(year)},
	}
	if err := c.do(ctx, "list_rack_bookings", http.MethodGet, "/api/v1/rack/", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListReportBookings бронирования для отчетов в периоде [from, to] по датам
func (c *Client) ListReportBookings(ctx context.Context, from, to time.Time) ([]Booking, error) {
	var list []Booking
	query := url.Values{
		"from": {from.Format(domain.DateFormat)},
		"to":   {to.Format(domain.DateFormat)},
	}
	if err := c.do(ctx, "list_report_bookings", http.MethodGet, "/api/v1/reports/bookings", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// RegisterClient регистрирует клиента трассы
func (c *Client) RegisterClient(ctx context.Context, record *ClientRecord) (*ClientRecord, error) {
	var created ClientRecord
	if err := c.do(ctx, "register_client", http.MethodPost, "/api/v1/clients/", nil, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SendVoucher запрашивает отправку ваучера по бронированию
func (c *Client) SendVoucher(ctx context.Context, bookingID int64) error {
	path := fmt.Sprintf("/api/v1/vouchers/%d/send", bookingID)
	return c.do(ctx, "send_voucher", http.MethodPost, path, nil, nil, nil)
}

// do выполняет запрос и разбирает ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out interface{}) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveBackendCall(operation, outcome(err), started)
	}()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Backend %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, operation, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		msg, _ := parseErrorBody(raw)
		return fmt.Errorf("%w: %s: %s", ErrNotFound, operation, msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		msg, code := parseErrorBody(raw)
		c.log.Info("Backend %s %s rejected: status=%d, message=%q", method, path, resp.StatusCode, msg)
		return &ValidationError{StatusCode: resp.StatusCode, Message: msg, Code: code}
	case resp.StatusCode >= 500:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		c.log.Error("Backend %s %s returned %d: %s", method, path, resp.StatusCode, string(raw))
		return fmt.Errorf("%w: %s: status %d", ErrUnavailable, operation, resp.StatusCode)
	default:
		return fmt.Errorf("%w: %s: unexpected status code %d", ErrInvalidResponse, operation, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to read response: %v", ErrUnavailable, operation, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, operation, err)
	}

	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isValidation(err):
		return "validation"
	default:
		return "error"
	}
}

func isValidation(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
