package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-KartingFront/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingLaps        = "количество кругов (laps) обязательно"
	msgInvalidLaps        = "laps должен быть 10, 15 или 20"
	msgInvalidHour        = "час должен быть числом от 0 до 23"
	msgInvalidInput       = "некорректные параметры запроса"
	msgBackendUnavailable = "сервис бронирований недоступен, попробуйте позже"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidLaps = errors.New("invalid laps")
	errInvalidHour = errors.New("invalid hour")
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), laps (required, 10|15|20), hour (optional, 0..23)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	lapsStr := query.Get("laps")
	if lapsStr == "" {
		h.logger.Warn("GET /availability - Missing laps")
		handlers.RespondBadRequest(w, msgMissingLaps)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, lapsStr, query.Get("hour"), h.loc)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errInvalidLaps):
			handlers.RespondBadRequest(w, msgInvalidLaps)
		default:
			handlers.RespondBadRequest(w, msgInvalidHour)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidSessionProduct):
			h.logger.Warn("GET /availability - Invalid laps: %s", lapsStr)
			handlers.RespondBadRequest(w, msgInvalidLaps)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrBackendUnavailable):
			h.logger.Error("GET /availability - Backend unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved: date=%s, laps=%d, times=%d, hour_groups=%d",
		dateStr, response.SessionProduct, len(response.Times), len(response.HourGroups))
	handlers.RespondJSON(w, http.StatusOK, response)
}
