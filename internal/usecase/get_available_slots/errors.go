package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidSessionProduct возвращается для продукта вне {10, 15, 20}
	ErrInvalidSessionProduct = errors.New("get_available_slots: invalid session product")

	// ErrBackendUnavailable возвращается, когда не удалось получить занятые интервалы
	ErrBackendUnavailable = errors.New("get_available_slots: backend unavailable")
)
