package reservation_flow

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	reservationFlow "github.com/m04kA/SMC-KartingFront/internal/usecase/reservation_flow"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgInvalidIndex        = "некорректный индекс участника"
	msgDraftNotFound       = "черновик бронирования не найден или истек"
	msgValidation          = "проверьте введенные данные"
	msgWrongStep           = "действие недоступно на текущем шаге"
	msgSlotsLoading        = "занятые интервалы еще загружаются"
	msgSlotsNotLoaded      = "сначала выберите дату"
	msgSlotBlocked         = "выбранное время недоступно"
	msgParticipantLimit    = "все участники уже добавлены"
	msgParticipantNotFound = "участник не найден"
	msgStaleResponse       = "дата была изменена, ответ для прежней даты отброшен"
	msgSubmitInProgress    = "бронирование уже отправляется"
	msgBackendRejected     = "бронирование отклонено"
	msgBackendUnavailable  = "сервис бронирований недоступен, попробуйте позже"
)

type Handler struct {
	useCase ReservationFlowUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase ReservationFlowUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Start POST /api/v1/reservations
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	state := h.useCase.Start()
	h.logger.Info("POST /reservations - Draft created: id=%s", state.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromState(state))
}

// Get GET /api/v1/reservations/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.useCase.Get(id)
	h.respond(w, "GET /reservations/{id}", id, state, err)
}

// SetActivity PUT /api/v1/reservations/{id}/activity
func (h *Handler) SetActivity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/activity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.useCase.SetActivity(id, req.ToUseCaseActivity())
	h.respond(w, "PUT /reservations/{id}/activity", id, state, err)
}

// SelectDate PUT /api/v1/reservations/{id}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req DateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := handlers.ParseDate(req.Date, h.loc)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id}/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondValidationError(w, msgInvalidDate, map[string]string{"date": msgInvalidDate})
		return
	}

	state, err := h.useCase.SelectDate(r.Context(), id, date)
	h.respond(w, "PUT /reservations/{id}/date", id, state, err)
}

// SelectTime PUT /api/v1/reservations/{id}/time
func (h *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req TimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id}/time - Invalid time %q: %v", req.StartTime, err)
		handlers.RespondValidationError(w, msgInvalidTime, map[string]string{"startTime": msgInvalidTime})
		return
	}

	state, err := h.useCase.SelectTime(id, reservationFlow.TimeRequest{StartTime: start})
	h.respond(w, "PUT /reservations/{id}/time", id, state, err)
}

// AddParticipant POST /api/v1/reservations/{id}/participants
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ParticipantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/participants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.useCase.AddParticipant(id, req.ToUseCaseParticipant())
	h.respond(w, "POST /reservations/{id}/participants", id, state, err)
}

// RemoveParticipant DELETE /api/v1/reservations/{id}/participants/{index}
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/participants/{index} - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	state, err := h.useCase.RemoveParticipant(id, index)
	h.respond(w, "DELETE /reservations/{id}/participants/{index}", id, state, err)
}

// Next POST /api/v1/reservations/{id}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.useCase.Next(id)
	h.respond(w, "POST /reservations/{id}/next", id, state, err)
}

// Back POST /api/v1/reservations/{id}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.useCase.Back(id)
	h.respond(w, "POST /reservations/{id}/back", id, state, err)
}

// Submit POST /api/v1/reservations/{id}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.useCase.Submit(r.Context(), id)
	h.respond(w, "POST /reservations/{id}/submit", id, state, err)
}

// Abandon DELETE /api/v1/reservations/{id}
func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.useCase.Abandon(id)
	h.respond(w, "DELETE /reservations/{id}", id, state, err)
}

// respond отправляет состояние потока или ошибку вместе с текущим состоянием
func (h *Handler) respond(w http.ResponseWriter, route, id string, state *reservationFlow.State, err error) {
	if err == nil {
		h.logger.Info("%s - OK: id=%s, step=%s", route, id, state.Step)
		handlers.RespondJSON(w, http.StatusOK, FromState(state))
		return
	}

	body := FlowErrorResponse{State: FromState(state)}
	var status int

	if ve, ok := reservationFlow.AsValidationError(err); ok {
		h.logger.Warn("%s - Validation failed: id=%s, %v", route, id, err)
		body.Error = msgValidation
		body.Fields = ve.Fields
		handlers.RespondJSON(w, http.StatusBadRequest, body)
		return
	}

	switch {
	case errors.Is(err, reservationFlow.ErrDraftNotFound):
		status, body.Error = http.StatusNotFound, msgDraftNotFound

	case errors.Is(err, reservationFlow.ErrSlotBlocked):
		status, body.Error = http.StatusBadRequest, msgSlotBlocked
		body.Fields = map[string]string{"startTime": msgSlotBlocked}

	case errors.Is(err, reservationFlow.ErrParticipantLimit):
		status, body.Error = http.StatusBadRequest, msgParticipantLimit
		body.Fields = map[string]string{"participants": msgParticipantLimit}

	case errors.Is(err, reservationFlow.ErrParticipantNotFound):
		status, body.Error = http.StatusNotFound, msgParticipantNotFound

	case errors.Is(err, reservationFlow.ErrInvalidInput):
		status, body.Error = http.StatusBadRequest, msgValidation

	case errors.Is(err, reservationFlow.ErrWrongStep), errors.Is(err, reservationFlow.ErrIllegalTransition):
		status, body.Error = http.StatusConflict, msgWrongStep

	case errors.Is(err, reservationFlow.ErrSlotsLoading):
		status, body.Error = http.StatusConflict, msgSlotsLoading

	case errors.Is(err, reservationFlow.ErrSlotsNotLoaded):
		status, body.Error = http.StatusConflict, msgSlotsNotLoaded

	case errors.Is(err, reservationFlow.ErrStaleResponse):
		status, body.Error = http.StatusConflict, msgStaleResponse

	case errors.Is(err, reservationFlow.ErrSubmitInProgress):
		status, body.Error = http.StatusConflict, msgSubmitInProgress

	case errors.Is(err, reservationFlow.ErrBackendRejected):
		status, body.Error = http.StatusUnprocessableEntity, msgBackendRejected
		if state != nil && state.LastError != nil && state.LastError.Message != "" {
			body.Error = state.LastError.Message
			if state.LastError.Field != "" {
				body.Fields = map[string]string{state.LastError.Field: state.LastError.Message}
			}
		}

	case errors.Is(err, reservationFlow.ErrBackendUnavailable):
		status, body.Error = http.StatusBadGateway, msgBackendUnavailable

	default:
		h.logger.Error("%s - Unexpected error: id=%s, error=%v", route, id, err)
		handlers.RespondInternalError(w)
		return
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("%s - Failed: id=%s, status=%d, error=%v", route, id, status, err)
	} else {
		h.logger.Warn("%s - Rejected: id=%s, status=%d, error=%v", route, id, status, err)
	}
	handlers.RespondJSON(w, status, body)
}
