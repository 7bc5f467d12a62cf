package kartingbackend

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
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second, nil, logger.NewNop())
}

func TestGetReservedStartTimes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bookings/reserved-times", r.URL.Path)
		assert.Equal(t, "2025-06-10", r.URL.Query().Get("date"))
		_ = json.NewEncoder(w).Encode([]string{"15:00:00", "16:30"})
	})

	times, err := client.GetReservedStartTimes(context.Background(), time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"15:00", "16:30"}, times)
}

func TestGetReservedEndTimes_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bookings/reserved-end-times", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	times, err := client.GetReservedEndTimes(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestSubmitBooking_ValidationShapes(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantMessage string
		wantCode    string
	}{
		{"bare json string", "application/json", `"El horario seleccionado ya está reservado"`, "El horario seleccionado ya está reservado", ""},
		{"plain text", "text/plain", `El horario seleccionado ya está reservado`, "El horario seleccionado ya está reservado", ""},
		{"object with message", "application/json", `{"message":"RUT inválido"}`, "RUT inválido", ""},
		{"object with error", "application/json", `{"error":"RUT inválido","code":"INVALID_RUT"}`, "RUT inválido", "INVALID_RUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.SubmitBooking(context.Background(), &SubmitBookingRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMessage, ve.Message)
			assert.Equal(t, tt.wantCode, ve.Code)
			assert.Equal(t, http.StatusBadRequest, ve.StatusCode)
		})
	}
}

func TestSubmitBooking_SendsPayload(t *testing.T) {
	var got SubmitBookingRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bookings/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Booking{ID: 7})
	})

	booking, err := client.SubmitBooking(context.Background(), &SubmitBookingRequest{
		BookingDate: "2025-06-10", BookingTime: "15:00", NumOfPeople: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, "15:00", got.BookingTime)
	assert.Equal(t, 2, got.NumOfPeople)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrUnavailable},
		{http.StatusBadGateway, ErrUnavailable},
		{http.StatusConflict, ErrValidation},
		{http.StatusMultipleChoices, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.CancelBooking(context.Background(), 3)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})
	_, err := client.ListBookingsByNationalID(context.Background(), "12345678-9")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, nil, logger.NewNop())
	err := client.SendVoucher(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetReservedStartTimes(ctx, time.Now())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestListBookingsForRackPeriod_Query(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rack/", r.URL.Path)
		assert.Equal(t, "6", r.URL.Query().Get("month"))
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		_ = json.NewEncoder(w).Encode([]Booking{{ID: 1}, {ID: 2}})
	})

	list, err := client.ListBookingsForRackPeriod(context.Background(), time.June, 2025)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestNewSubmitBookingRequest(t *testing.T) {
	draft := domain.NewBookingDraft().
		WithActivity(domain.Session20, 2).
		WithDate(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)).
		WithStartTime("11:20").
		WithParticipant(domain.Participant{NationalID: "12345678-9", Name: "Ana", Email: "ana@mail.cl"}).
		WithParticipant(domain.Participant{NationalID: "8765432-k", Name: "Luis", Email: "luis@mail.cl"})

	req, err := NewSubmitBookingRequest(draft)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-14", req.BookingDate)
	assert.Equal(t, "11:20", req.BookingTime)
	assert.Equal(t, "12:00", req.BookingTimeEnd)
	assert.Equal(t, 20, req.LapsOrMaxTimeAllowed)
	assert.Equal(t, 2, req.NumOfPeople)
	assert.Equal(t, "12345678-9", req.RutUser)
	assert.Equal(t, "12345678-9,8765432-k", req.RutsUsers)
	assert.Equal(t, "Ana,Luis", req.NamesUsers)
	assert.Equal(t, "ana@mail.cl,luis@mail.cl", req.EmailsUsers)
}

func TestBooking_ToDomain(t *testing.T) {
	b := Booking{
		ID:                   5,
		BookingDate:          "2025-06-14",
		BookingTime:          "11:20:00",
		LapsOrMaxTimeAllowed: 15,
		NumOfPeople:          2,
		RutUser:              "12345678-9",
		RutsUsers:            "12345678-9, 8765432-k",
		NamesUsers:           "Ana,Luis",
		EmailsUsers:          "ana@mail.cl",
		BookingStatus:        "confirmada",
		TotalAmount:          30000,
	}

	got, err := b.ToDomain(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "11:20", got.StartTime.String())
	assert.Equal(t, "11:55", got.EndTime.String(), "end derived from block duration")
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	require.Len(t, got.Participants, 2)
	assert.Equal(t, "8765432-k", got.Participants[1].NationalID)
	assert.Equal(t, "", got.Participants[1].Email)
	assert.Equal(t, "Ana", got.HolderName())

	b.BookingDate = "14/06/2025"
	_, err = b.ToDomain(time.UTC)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
