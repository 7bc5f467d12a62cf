package get_rack_week

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	getRackWeek "github.com/m04kA/SMC-KartingFront/internal/usecase/get_rack_week"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBackendUnavailable = "сервис бронирований недоступен, попробуйте позже"
)

type Handler struct {
	useCase GetRackWeekUseCase
	loc     *time.Location
	now     func() time.Time
	logger  Logger
}

func NewHandler(useCase GetRackWeekUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		now:     time.Now,
		logger:  logger,
	}
}

// Handle GET /api/v1/rack
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	var date time.Time
	if dateStr == "" {
		now := h.now().In(h.loc)
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	} else {
		parsed, err := handlers.ParseDate(dateStr, h.loc)
		if err != nil {
			h.logger.Warn("GET /rack - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getRackWeek.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getRackWeek.ErrInvalidInput):
			h.logger.Warn("GET /rack - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getRackWeek.ErrBackendUnavailable):
			h.logger.Error("GET /rack - Backend unavailable: error=%v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /rack - Failed to build rack: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rack - Rack retrieved: week=%s..%s", response.WeekStart, response.WeekEnd)
	handlers.RespondJSON(w, http.StatusOK, response)
}
