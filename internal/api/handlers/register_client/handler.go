package register_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	"github.com/m04kA/SMC-KartingFront/internal/service/clients"
	"github.com/m04kA/SMC-KartingFront/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации данных клиента"
	msgInvalidInput       = "некорректные данные клиента"
	msgBackendRejected    = "бэкенд отклонил регистрацию клиента"
	msgBackendUnavailable = "сервис бронирований недоступен, попробуйте позже"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var validationErr *clients.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /clients - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, clients.ErrBackendRejected):
			h.logger.Warn("POST /clients - Backend rejected client: %v", err)
			handlers.RespondUnprocessable(w, msgBackendRejected)

		case errors.Is(err, clients.ErrBackendUnavailable):
			h.logger.Error("POST /clients - Backend unavailable: error=%v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /clients - Failed to register client: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client registered: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
