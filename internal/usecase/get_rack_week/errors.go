package get_rack_week

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInternal возвращается при некорректных данных бэкенда
	ErrInternal = errors.New("get_rack_week: internal error")
)
