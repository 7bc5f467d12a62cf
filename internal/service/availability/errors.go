package availability

import "errors"

var (
	// ErrInvalidTime возвращается при некорректном HH:MM от бэкенда
	ErrInvalidTime = errors.New("availability: invalid reserved time")

	// ErrInvalidDuration возвращается при неположительной длительности блока
	ErrInvalidDuration = errors.New("availability: invalid block duration")
)
