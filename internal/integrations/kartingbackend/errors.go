package kartingbackend

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation бэкенд отклонил запрос (4xx с сообщением)
	ErrValidation = errors.New("karting backend: validation error")

	// ErrNotFound ресурс не найден
	ErrNotFound = errors.New("karting backend: not found")

	// ErrUnavailable бэкенд недоступен (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("karting backend: unavailable")

	// ErrInvalidResponse ответ бэкенда не удалось разобрать
	ErrInvalidResponse = errors.New("karting backend: invalid response")

	// ErrInternal ошибка клиента при подготовке запроса
	ErrInternal = errors.New("karting backend client: internal error")
)

// ValidationError ошибка валидации от бэкенда.
// Message - текст как его вернул бэкенд, Code - структурированный код (если есть)
type ValidationError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *ValidationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%v (status %d, code %s): %s", ErrValidation, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%v (status %d): %s", ErrValidation, e.StatusCode, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidationError извлекает ValidationError из цепочки ошибок
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
