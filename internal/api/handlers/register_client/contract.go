package register_client

import (
	"context"

	"github.com/m04kA/SMC-KartingFront/internal/service/clients/models"
)

type ClientService interface {
	Register(ctx context.Context, req *models.RegisterClientRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
