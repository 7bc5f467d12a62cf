package get_sales_report

import (
	"context"

	getSalesReport "github.com/m04kA/SMC-KartingFront/internal/usecase/get_sales_report"
)

type GetSalesReportUseCase interface {
	Execute(ctx context.Context, req *getSalesReport.Request) (*getSalesReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
