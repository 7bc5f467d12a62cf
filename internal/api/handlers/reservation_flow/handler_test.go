package reservation_flow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
	"github.com/m04kA/SMC-KartingFront/internal/service/availability"
	reservationFlow "github.com/m04kA/SMC-KartingFront/internal/usecase/reservation_flow"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
)

type stubReservedTimes struct{}

func (stubReservedTimes) Fetch(_ context.Context, date time.Time, _ int) ([]domain.ReservedInterval, error) {
	return []domain.ReservedInterval{{
		Start: date.Add(16 * time.Hour),
		End:   date.Add(17 * time.Hour),
	}}, nil
}

type stubBackend struct {
	err error
}

func (b *stubBackend) SubmitBooking(_ context.Context, _ *kartingbackend.SubmitBookingRequest) (*kartingbackend.Booking, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &kartingbackend.Booking{ID: 77}, nil
}

type fixedTime struct{}

func (fixedTime) Now() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newRouter(backend *stubBackend) *mux.Router {
	store := sessions.NewRepository[*reservationFlow.Controller](time.Hour, fixedTime{}.Now)
	uc := reservationFlow.NewUseCase(store, reservationFlow.Dependencies{
		ReservedTimes: stubReservedTimes{},
		Engine:        availability.NewDefaultEngine(),
		Backend:       backend,
		TimeProvider:  fixedTime{},
		Logger:        logger.NewNop(),
	})
	h := NewHandler(uc, time.UTC, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/reservations", h.Start).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id}", h.Abandon).Methods(http.MethodDelete)
	r.HandleFunc("/reservations/{id}/activity", h.SetActivity).Methods(http.MethodPut)
	r.HandleFunc("/reservations/{id}/date", h.SelectDate).Methods(http.MethodPut)
	r.HandleFunc("/reservations/{id}/time", h.SelectTime).Methods(http.MethodPut)
	r.HandleFunc("/reservations/{id}/participants", h.AddParticipant).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id}/participants/{index}", h.RemoveParticipant).Methods(http.MethodDelete)
	r.HandleFunc("/reservations/{id}/next", h.Next).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id}/back", h.Back).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id}/submit", h.Submit).Methods(http.MethodPost)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) (*httptest.ResponseRecorder, FlowErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))

	var parsed FlowErrorResponse
	if w.Code >= http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) StateResponse {
	t.Helper()
	var s StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	return s
}

func TestFlow_HappyPath(t *testing.T) {
	r := newRouter(&stubBackend{})

	w, _ := do(t, r, http.MethodPost, "/reservations", "")
	require.Equal(t, http.StatusCreated, w.Code)
	state := decodeState(t, w)
	require.NotEmpty(t, state.ID)
	assert.Equal(t, "activity_details", state.Step)
	assert.Equal(t, 1, state.StepNumber)
	base := "/reservations/" + state.ID

	w, _ = do(t, r, http.MethodPut, base+"/activity", `{"laps":15,"participantCount":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 35, decodeState(t, w).DurationMinutes)

	w, _ = do(t, r, http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPut, base+"/date", `{"date":"2025-06-10"}`)
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeState(t, w)
	assert.True(t, state.Slots.Ready)
	require.Len(t, state.Slots.Reserved, 1)
	assert.Equal(t, IntervalResponse{Start: "16:00", End: "17:00"}, state.Slots.Reserved[0])

	w, body := do(t, r, http.MethodPut, base+"/time", `{"startTime":"16:10"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Fields, "startTime")
	require.NotNil(t, body.State)
	assert.Equal(t, "date_and_time", body.State.Step)

	w, _ = do(t, r, http.MethodPut, base+"/time", `{"startTime":"17:00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeState(t, w)
	assert.Equal(t, "17:00", state.Draft.StartTime)
	assert.Equal(t, "17:35", state.Draft.EndTime)

	w, _ = do(t, r, http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	for _, p := range []string{
		`{"nationalId":"11111111-1","name":"Ana","email":"ana@example.com"}`,
		`{"nationalId":"22222222-2","name":"Luis","email":"luis@example.com"}`,
	} {
		w, _ = do(t, r, http.MethodPost, base+"/participants", p)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, _ = do(t, r, http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "review", decodeState(t, w).Step)

	w, _ = do(t, r, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeState(t, w)
	assert.Equal(t, "submitted", state.Step)
	require.NotNil(t, state.BookingID)
	assert.Equal(t, int64(77), *state.BookingID)
}

func TestFlow_Errors(t *testing.T) {
	r := newRouter(&stubBackend{})

	w, body := do(t, r, http.MethodGet, "/reservations/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Nil(t, body.State)

	w, _ = do(t, r, http.MethodPost, "/reservations", "")
	base := "/reservations/" + decodeState(t, w).ID

	w, body = do(t, r, http.MethodPut, base+"/activity", `{"laps":12,"participantCount":16}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Fields, "sessionProduct")
	assert.Contains(t, body.Fields, "participantCount")

	w, _ = do(t, r, http.MethodPut, base+"/activity", `{"laps":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, r, http.MethodPut, base+"/date", `{"date":"2025-06-10"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "activity_details", body.State.Step)

	w, _ = do(t, r, http.MethodPost, base+"/back", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(t, r, http.MethodPut, base+"/activity", `{"laps":10,"participantCount":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, body = do(t, r, http.MethodPut, base+"/date", `{"date":"10/06/2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Fields, "date")

	w, body = do(t, r, http.MethodPut, base+"/date", `{"date":"2025-05-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body.Fields, "date")

	w, _ = do(t, r, http.MethodPut, base+"/time", `{"startTime":"15:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodDelete, base+"/participants/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodDelete, base, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abandoned", decodeState(t, w).Step)

	w, _ = do(t, r, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlow_SubmitRejected(t *testing.T) {
	backend := &stubBackend{err: &kartingbackend.ValidationError{StatusCode: 400, Message: "El RUT no corresponde a un cliente"}}
	r := newRouter(backend)

	w, _ := do(t, r, http.MethodPost, "/reservations", "")
	base := "/reservations/" + decodeState(t, w).ID

	steps := []struct {
		method, path, body string
	}{
		{http.MethodPut, "/activity", `{"laps":20,"participantCount":1}`},
		{http.MethodPost, "/next", ""},
		{http.MethodPut, "/date", `{"date":"2025-06-14"}`},
		{http.MethodPut, "/time", `{"startTime":"10:00"}`},
		{http.MethodPost, "/next", ""},
		{http.MethodPost, "/participants", `{"nationalId":"11111111-1","name":"Ana","email":"ana@example.com"}`},
		{http.MethodPost, "/next", ""},
	}
	for _, s := range steps {
		w, _ = do(t, r, s.method, base+s.path, s.body)
		require.Equal(t, http.StatusOK, w.Code, s.path)
	}

	w, body := do(t, r, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "El RUT no corresponde a un cliente", body.Error)
	assert.Contains(t, body.Fields, "nationalId")
	require.NotNil(t, body.State)
	assert.Equal(t, "participants", body.State.Step)
	require.NotNil(t, body.State.LastError)
	assert.Equal(t, "backend", body.State.LastError.Kind)
	assert.Len(t, body.State.Draft.Participants, 1)

	backend.err = kartingbackend.ErrUnavailable
	w, _ = do(t, r, http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	w, body = do(t, r, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "review", body.State.Step)
	assert.Equal(t, "network", body.State.LastError.Kind)
}
