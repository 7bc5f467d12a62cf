package get_rack_week

import (
	"context"

	getRackWeek "github.com/m04kA/SMC-KartingFront/internal/usecase/get_rack_week"
)

type GetRackWeekUseCase interface {
	Execute(ctx context.Context, req *getRackWeek.Request) (*getRackWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
