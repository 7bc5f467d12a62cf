package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-KartingFront/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_HourGroups(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		SessionProduct:  domain.Session15,
		DurationMinutes: 35,
		DayClass:        domain.DayWeekday,
		Open:            "14:00",
		Close:           "22:00",
		HourGroups:      []domain.HourGroup{{Hour: 14, Bookable: 60, Available: true}},
	}}
	h := NewHandler(uc, time.UTC, logger.NewNop())

	w := serve(h, "/api/v1/availability?date=2025-06-10&laps=15")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 15, uc.got.SessionProduct)
	assert.Nil(t, uc.got.Hour)

	var body AvailabilityResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2025-06-10", body.Date)
	assert.Equal(t, "weekday", body.DayClass)
	require.Len(t, body.HourGroups, 1)
	assert.Equal(t, 60, body.HourGroups[0].Bookable)
	assert.Nil(t, body.Times)
}

func TestHandle_Hour(t *testing.T) {
	hour := 21
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		SessionProduct: domain.Session10,
		Hour:           &hour,
		Times:          []types.TimeString{"21:00", "21:01"},
	}}
	h := NewHandler(uc, time.UTC, logger.NewNop())

	w := serve(h, "/api/v1/availability?date=2025-06-10&laps=10&hour=21")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got.Hour)
	assert.Equal(t, 21, *uc.got.Hour)

	var body AvailabilityResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []string{"21:00", "21:01"}, body.Times)
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, time.UTC, logger.NewNop())

	for _, target := range []string{
		"/api/v1/availability?laps=10",
		"/api/v1/availability?date=2025-06-10",
		"/api/v1/availability?date=10.06.2025&laps=10",
		"/api/v1/availability?date=2025-06-10&laps=ten",
		"/api/v1/availability?date=2025-06-10&laps=10&hour=x",
	} {
		w := serve(h, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := map[error]int{
		getAvailableSlots.ErrInvalidSessionProduct: http.StatusBadRequest,
		getAvailableSlots.ErrInvalidInput:          http.StatusBadRequest,
		getAvailableSlots.ErrBackendUnavailable:    http.StatusBadGateway,
		errors.New("boom"):                         http.StatusInternalServerError,
	}

	for err, status := range cases {
		h := NewHandler(&fakeUseCase{err: err}, time.UTC, logger.NewNop())
		w := serve(h, "/api/v1/availability?date=2025-06-10&laps=12")
		assert.Equal(t, status, w.Code, err.Error())
	}
}
