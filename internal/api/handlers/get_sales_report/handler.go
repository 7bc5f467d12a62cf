package get_sales_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	getSalesReport "github.com/m04kA/SMC-KartingFront/internal/usecase/get_sales_report"
)

const (
	msgMissingPeriod      = "параметры from и to обязательны"
	msgInvalidPeriod      = "некорректный период: ожидается YYYY-MM, from <= to, не более 24 месяцев"
	msgBackendUnavailable = "сервис бронирований недоступен, попробуйте позже"
)

type Handler struct {
	useCase GetSalesReportUseCase
	logger  Logger
}

func NewHandler(useCase GetSalesReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/sales
// Query params: from, to (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, to := query.Get("from"), query.Get("to")
	if from == "" || to == "" {
		h.logger.Warn("GET /reports/sales - Missing period: from=%q, to=%q", from, to)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSalesReport.Request{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, getSalesReport.ErrInvalidInput):
			h.logger.Warn("GET /reports/sales - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getSalesReport.ErrBackendUnavailable):
			h.logger.Error("GET /reports/sales - Backend unavailable: error=%v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /reports/sales - Failed to build report: from=%s, to=%s, error=%v", from, to, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /reports/sales - Report built: from=%s, to=%s, months=%d, total=%.0f",
		response.From, response.To, len(response.Months), response.ByProduct.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, response)
}
