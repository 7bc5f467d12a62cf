package clients

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
	"github.com/m04kA/SMC-KartingFront/internal/service/clients/models"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
)

type fakeClient struct {
	got     *kartingbackend.ClientRecord
	created *kartingbackend.ClientRecord
	err     error
}

func (f *fakeClient) RegisterClient(_ context.Context, record *kartingbackend.ClientRecord) (*kartingbackend.ClientRecord, error) {
	f.got = record
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func validRequest() *models.RegisterClientRequest {
	return &models.RegisterClientRequest{
		NationalID: "12345678-K",
		Name:       " Ana Pérez ",
		Email:      "ana@example.com",
		BirthDate:  "1990-04-21",
	}
}

func TestRegister(t *testing.T) {
	client := &fakeClient{created: &kartingbackend.ClientRecord{
		ID:        10,
		Rut:       "12345678-K",
		Name:      "Ana Pérez",
		Email:     "ana@example.com",
		BirthDate: "1990-04-21",
	}}
	svc := NewService(client, fixedNow, logger.NewNop())

	resp, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "12345678-K", resp.NationalID)

	require.NotNil(t, client.got)
	assert.Equal(t, "Ana Pérez", client.got.Name)
	assert.Equal(t, "12345678-K", client.got.Rut)
}

func TestRegister_EmptyBackendBody(t *testing.T) {
	svc := NewService(&fakeClient{created: &kartingbackend.ClientRecord{}}, fixedNow, logger.NewNop())

	resp, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "12345678-K", resp.NationalID)
	assert.Equal(t, "1990-04-21", resp.BirthDate)
}

func TestRegister_Validation(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, fixedNow, logger.NewNop())

	_, err := svc.Register(context.Background(), &models.RegisterClientRequest{
		NationalID: "12.345.678-9",
		Email:      "not-an-email",
		BirthDate:  "21/04/1990",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 4)
	assert.Contains(t, ve.Fields, "nationalId")
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "birthDate")
	assert.Nil(t, client.got)

	req := validRequest()
	req.BirthDate = "2030-01-01"
	_, err = svc.Register(context.Background(), req)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "must not be in the future", ve.Fields["birthDate"])
}

func TestRegister_BackendErrors(t *testing.T) {
	svc := NewService(&fakeClient{err: &kartingbackend.ValidationError{StatusCode: 409, Message: "El cliente ya existe"}}, fixedNow, logger.NewNop())
	_, err := svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBackendRejected)

	svc = NewService(&fakeClient{err: fmt.Errorf("%w: refused", kartingbackend.ErrUnavailable)}, fixedNow, logger.NewNop())
	_, err = svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}
