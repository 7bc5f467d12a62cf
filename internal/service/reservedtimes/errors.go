package reservedtimes

import "errors"

var (
	// ErrFetchFailed хотя бы один из парных запросов завершился ошибкой
	ErrFetchFailed = errors.New("reserved times: fetch failed")

	// ErrInvalidData бэкенд вернул некорректные времена
	ErrInvalidData = errors.New("reserved times: invalid data")
)
