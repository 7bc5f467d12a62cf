package get_rack_week

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	getRackWeek "github.com/m04kA/SMC-KartingFront/internal/usecase/get_rack_week"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
)

type fakeUseCase struct {
	got  *getRackWeek.Request
	resp *getRackWeek.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getRackWeek.Request) (*getRackWeek.Response, error) {
	f.got = req
	return f.resp, f.err
}

func weekResponse() *getRackWeek.Response {
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	resp := &getRackWeek.Response{WeekStart: monday, WeekEnd: monday.AddDate(0, 0, 6)}
	for i := range resp.Days {
		resp.Days[i] = getRackWeek.Day{
			Date:     monday.AddDate(0, 0, i),
			DayClass: domain.DayWeekday,
			Open:     "14:00",
			Close:    "22:00",
		}
	}
	resp.Days[1].Entries = []getRackWeek.Entry{{
		BookingID:      7,
		StartTime:      "16:00",
		EndTime:        "16:35",
		SessionProduct: domain.Session15,
		NumOfPeople:    4,
		HolderName:     "Ana",
		Status:         domain.StatusConfirmed,
	}}
	return resp
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: weekResponse()}
	h := NewHandler(uc, time.UTC, logger.NewNop())

	w := serve(h, "/api/v1/rack?date=2025-06-10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-06-10", uc.got.Date.Format(domain.DateFormat))

	var body RackResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2025-06-09", body.WeekStart)
	assert.Equal(t, "2025-06-15", body.WeekEnd)
	require.Len(t, body.Days, 7)
	assert.Empty(t, body.Days[0].Entries)
	require.Len(t, body.Days[1].Entries, 1)
	assert.Equal(t, 15, body.Days[1].Entries[0].Laps)
	assert.Equal(t, "16:35", body.Days[1].Entries[0].EndTime)
}

func TestHandle_DefaultsToToday(t *testing.T) {
	uc := &fakeUseCase{resp: weekResponse()}
	h := NewHandler(uc, time.UTC, logger.NewNop())
	h.now = func() time.Time { return time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC) }

	w := serve(h, "/api/v1/rack")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-06-12", uc.got.Date.Format(domain.DateFormat))
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, time.UTC, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/rack?date=10-06-2025").Code)

	down := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: x", getRackWeek.ErrBackendUnavailable)}, time.UTC, logger.NewNop())
	assert.Equal(t, http.StatusBadGateway, serve(down, "/api/v1/rack?date=2025-06-10").Code)

	broken := NewHandler(&fakeUseCase{err: getRackWeek.ErrInternal}, time.UTC, logger.NewNop())
	assert.Equal(t, http.StatusInternalServerError, serve(broken, "/api/v1/rack?date=2025-06-10").Code)
}
