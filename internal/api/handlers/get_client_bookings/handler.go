package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	"github.com/m04kA/SMC-KartingFront/internal/service/bookings"
)

const (
	msgMissingNationalID  = "RUT (nationalId) обязателен"
	msgInvalidNationalID  = "некорректный RUT, ожидается формат 12345678-9"
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

// Handle GET /api/v1/bookings?nationalId=12345678-9
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	nationalID := r.URL.Query().Get("nationalId")
	if nationalID == "" {
		h.logger.Warn("GET /bookings - Missing nationalId")
		handlers.RespondBadRequest(w, msgMissingNationalID)
		return
	}

	result, err := h.service.ListByNationalID(r.Context(), nationalID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid nationalId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidNationalID)

		case errors.Is(err, bookings.ErrBackendUnavailable):
			h.logger.Error("GET /bookings - Backend unavailable: error=%v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
