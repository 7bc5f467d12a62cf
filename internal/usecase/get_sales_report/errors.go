package get_sales_report

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном периоде
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInternal возвращается при некорректных данных бэкенда
	ErrInternal = errors.New("get_sales_report: internal error")
)
