package send_voucher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-KartingFront/internal/service/bookings"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) SendVoucher(_ context.Context, _ int64) error {
	return f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/voucher", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	w := serve(&fakeService{}, "/bookings/3/voucher")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookingId":3,"voucherSent":true}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/bookings/-3/voucher").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: bookings.ErrBookingNotFound}, "/bookings/3/voucher").Code)
	assert.Equal(t, http.StatusBadGateway, serve(&fakeService{err: bookings.ErrBackendUnavailable}, "/bookings/3/voucher").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}, "/bookings/3/voucher").Code)
}
