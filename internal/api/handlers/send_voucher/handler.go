package send_voucher

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
	msgRejected           = "ваучер не может быть отправлен"
	msgBackendUnavailable = "сервис бронирований недоступен, попробуйте позже"
)

// VoucherResponse HTTP response model
type VoucherResponse struct {
	BookingID   int64 `json:"bookingId"`
	VoucherSent bool  `json:"voucherSent"`
}

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

// Handle POST /api/v1/bookings/{bookingId}/voucher
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/voucher - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.SendVoucher(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/voucher - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrBackendRejected):
			h.logger.Warn("POST /bookings/{id}/voucher - Rejected: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUnprocessable(w, msgRejected)

		case errors.Is(err, bookings.ErrBackendUnavailable):
			h.logger.Error("POST /bookings/{id}/voucher - Backend unavailable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /bookings/{id}/voucher - Failed to send voucher: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/voucher - Voucher sent: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, VoucherResponse{BookingID: bookingID, VoucherSent: true})
}
