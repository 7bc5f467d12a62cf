package clients

import (
	"context"

	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// BackendClient интерфейс клиента бэкенда для регистрации клиентов
type BackendClient interface {
	RegisterClient(ctx context.Context, record *kartingbackend.ClientRecord) (*kartingbackend.ClientRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
