package bookings

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
	"github.com/m04kA/SMC-KartingFront/internal/service/bookings/models"
)

var nationalIDRe = regexp.MustCompile(domain.NationalIDPattern)

// Service сервис для работы с существующими бронированиями
type Service struct {
	client BackendClient
	loc    *time.Location
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BackendClient, loc *time.Location, logger Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		client: client,
		loc:    loc,
		logger: logger,
	}
}

// ListByNationalID ищет бронирования по RUT владельца.
// Отсутствие бронирований - пустой список, а не ошибка
func (s *Service) ListByNationalID(ctx context.Context, nationalID string) (*models.BookingListResponse, error) {
	nationalID = strings.TrimSpace(nationalID)
	if !nationalIDRe.MatchString(nationalID) {
		return nil, fmt.Errorf("%w: nationalId must match 12345678-9", ErrInvalidInput)
	}

	s.logger.Info("ListByNationalID: fetching bookings for rut=%s", nationalID)

	list, err := s.client.ListBookingsByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, kartingbackend.ErrNotFound) {
			s.logger.Info("ListByNationalID: no bookings for rut=%s", nationalID)
			return models.FromDomainBookingList(nil), nil
		}
		return nil, s.mapBackendError("ListByNationalID", err)
	}

	bookings, err := kartingbackend.BookingsToDomain(list, s.loc)
	if err != nil {
		s.logger.Error("ListByNationalID: invalid backend data for rut=%s: %v", nationalID, err)
		return nil, fmt.Errorf("%w: ListByNationalID - convert: %v", ErrInternal, err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.BookingDate.Equal(b.BookingDate) {
			return a.BookingDate.Before(b.BookingDate)
		}
		return a.StartTime.IsBefore(b.StartTime)
	})

	s.logger.Info("ListByNationalID: found %d bookings for rut=%s", len(bookings), nationalID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает бронирование и отправляет ваучер.
// Ошибка отправки ваучера не отменяет подтверждение: VoucherSent=false
func (s *Service) Confirm(ctx context.Context, id int64) (*models.ConfirmResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.client.ConfirmBooking(ctx, id)
	if err != nil {
		return nil, s.mapBackendError("Confirm", err)
	}

	resp, err := s.toResponse(booking)
	if err != nil {
		return nil, err
	}

	voucherSent := true
	if err := s.client.SendVoucher(ctx, id); err != nil {
		s.logger.Warn("Confirm: booking id=%d confirmed, voucher not sent: %v", id, err)
		voucherSent = false
	}

	s.logger.Info("Confirm: booking id=%d confirmed, voucherSent=%t", id, voucherSent)
	return &models.ConfirmResponse{
		Booking:     *resp,
		VoucherSent: voucherSent,
	}, nil
}

// Cancel отменяет бронирование
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.client.CancelBooking(ctx, id)
	if err != nil {
		return nil, s.mapBackendError("Cancel", err)
	}

	resp, err := s.toResponse(booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return resp, nil
}

// SendVoucher повторно отправляет ваучер бронирования
func (s *Service) SendVoucher(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if err := s.client.SendVoucher(ctx, id); err != nil {
		return s.mapBackendError("SendVoucher", err)
	}

	s.logger.Info("SendVoucher: voucher for booking id=%d sent", id)
	return nil
}

func (s *Service) toResponse(b *kartingbackend.Booking) (*models.BookingResponse, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: empty backend response", ErrInternal)
	}
	booking, err := b.ToDomain(s.loc)
	if err != nil {
		s.logger.Error("invalid backend booking id=%d: %v", b.ID, err)
		return nil, fmt.Errorf("%w: convert booking: %v", ErrInternal, err)
	}
	return models.FromDomainBooking(booking), nil
}

func (s *Service) mapBackendError(op string, err error) error {
	if errors.Is(err, kartingbackend.ErrNotFound) {
		s.logger.Warn("%s: booking not found: %v", op, err)
		return fmt.Errorf("%w: %v", ErrBookingNotFound, err)
	}
	if ve, ok := kartingbackend.AsValidationError(err); ok {
		s.logger.Warn("%s: backend rejected: %s", op, ve.Message)
		return fmt.Errorf("%w: %s", ErrBackendRejected, ve.Message)
	}
	if errors.Is(err, kartingbackend.ErrUnavailable) {
		s.logger.Error("%s: backend unavailable: %v", op, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	s.logger.Error("%s: backend error: %v", op, err)
	return fmt.Errorf("%w: %s - backend error: %v", ErrInternal, op, err)
}
