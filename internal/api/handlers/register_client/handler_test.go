package register_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	"github.com/m04kA/SMC-KartingFront/internal/service/clients"
	"github.com/m04kA/SMC-KartingFront/internal/service/clients/models"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
)

type fakeService struct {
	got *models.RegisterClientRequest
	err error
}

func (f *fakeService) Register(_ context.Context, req *models.RegisterClientRequest) (*models.ClientResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClientResponse{
		ID:         9,
		NationalID: req.NationalID,
		Name:       req.Name,
		Email:      req.Email,
		BirthDate:  req.BirthDate,
	}, nil
}

const validBody = `{"nationalId":"12345678-9","name":"Ana","email":"ana@example.com","birthDate":"1990-04-21"}`

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(body))
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, validBody)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ana@example.com", svc.got.Email)

	var body models.ClientResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, int64(9), body.ID)
}

func TestHandle_ValidationError(t *testing.T) {
	svc := &fakeService{err: &clients.ValidationError{Fields: map[string]string{"email": "invalid email"}}}
	w := serve(svc, validBody)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "invalid email", body.Fields["email"])
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"unknown":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `not json`).Code)

	rejected := &fakeService{err: fmt.Errorf("%w: rut exists", clients.ErrBackendRejected)}
	assert.Equal(t, http.StatusUnprocessableEntity, serve(rejected, validBody).Code)

	down := &fakeService{err: fmt.Errorf("%w: x", clients.ErrBackendUnavailable)}
	assert.Equal(t, http.StatusBadGateway, serve(down, validBody).Code)
}
