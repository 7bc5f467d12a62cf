package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	"github.com/m04kA/SMC-KartingFront/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgNotFound           = "бронирование не найдено"
	msgCannotConfirm      = "бронирование не может быть подтверждено"
	msgBackendUnavailable = "сервис бронирований недоступен, попробуйте позже"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm
// Подтверждает бронирование и отправляет ваучер; voucherSent=false, если ваучер не ушел
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Confirm(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrBackendRejected):
			h.logger.Warn("POST /bookings/{id}/confirm - Cannot confirm: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUnprocessable(w, msgCannotConfirm)

		case errors.Is(err, bookings.ErrBackendUnavailable):
			h.logger.Error("POST /bookings/{id}/confirm - Backend unavailable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm - Booking confirmed: booking_id=%d, voucher_sent=%t",
		bookingID, result.VoucherSent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
