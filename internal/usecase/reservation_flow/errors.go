package reservation_flow

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDraftNotFound черновик не найден или истек
	ErrDraftNotFound = errors.New("reservation_flow: draft not found")

	// ErrInvalidInput локальная ошибка валидации
	ErrInvalidInput = errors.New("reservation_flow: invalid input data")

	// ErrWrongStep операция недоступна на текущем шаге
	ErrWrongStep = errors.New("reservation_flow: operation not allowed on current step")

	// ErrIllegalTransition переход не предусмотрен таблицей переходов
	ErrIllegalTransition = errors.New("reservation_flow: illegal transition")

	// ErrSlotsLoading занятые интервалы еще загружаются
	ErrSlotsLoading = errors.New("reservation_flow: reserved times are loading")

	// ErrSlotsNotLoaded занятые интервалы не загружены (дата не выбрана или загрузка не удалась)
	ErrSlotsNotLoaded = errors.New("reservation_flow: reserved times are not loaded")

	// ErrSlotBlocked выбранное время недоступно
	ErrSlotBlocked = errors.New("reservation_flow: slot is not available")

	// ErrParticipantLimit список участников уже заполнен
	ErrParticipantLimit = errors.New("reservation_flow: participant list is full")

	// ErrParticipantNotFound участника с таким индексом нет
	ErrParticipantNotFound = errors.New("reservation_flow: participant not found")

	// ErrStaleResponse ответ относится к дате, которая уже не выбрана
	ErrStaleResponse = errors.New("reservation_flow: stale reserved times response discarded")

	// ErrSubmitInProgress бронирование уже отправляется
	ErrSubmitInProgress = errors.New("reservation_flow: submission in progress")

	// ErrBackendRejected бэкенд отклонил бронирование
	ErrBackendRejected = errors.New("reservation_flow: backend rejected booking")

	// ErrBackendUnavailable бэкенд недоступен
	ErrBackendUnavailable = errors.New("reservation_flow: backend unavailable")
)

// FieldErrors ошибки валидации по полям
type FieldErrors map[string]string

// ValidationError локальная ошибка валидации с привязкой к шагу и полям
type ValidationError struct {
	Step   Step
	Fields FieldErrors
}

func newValidationError(step Step, fields FieldErrors) *ValidationError {
	return &ValidationError{Step: step, Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return fmt.Sprintf("%v (step %s): %s", ErrInvalidInput, e.Step, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// AsValidationError извлекает ValidationError из цепочки ошибок
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
