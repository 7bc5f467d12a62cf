package get_client_bookings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-KartingFront/internal/service/bookings"
	"github.com/m04kA/SMC-KartingFront/internal/service/bookings/models"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
)

type fakeService struct {
	got  string
	resp *models.BookingListResponse
	err  error
}

func (f *fakeService) ListByNationalID(_ context.Context, nationalID string) (*models.BookingListResponse, error) {
	f.got = nationalID
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}

	w := serve(svc, "/api/v1/bookings?nationalId=12345678-9")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345678-9", svc.got)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/bookings").Code)

	invalid := &fakeService{err: fmt.Errorf("%w: nationalId", bookings.ErrInvalidInput)}
	assert.Equal(t, http.StatusBadRequest, serve(invalid, "/api/v1/bookings?nationalId=abc").Code)

	down := &fakeService{err: fmt.Errorf("%w: timeout", bookings.ErrBackendUnavailable)}
	assert.Equal(t, http.StatusBadGateway, serve(down, "/api/v1/bookings?nationalId=12345678-9").Code)

	broken := &fakeService{err: bookings.ErrInternal}
	assert.Equal(t, http.StatusInternalServerError, serve(broken, "/api/v1/bookings?nationalId=12345678-9").Code)
}
