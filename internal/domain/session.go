package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSessionProduct возвращается для продукта вне {10, 15, 20}
var ErrInvalidSessionProduct = errors.New("invalid session product")

// SessionProduct продукт заезда: 10, 15 или 20 кругов (или минут)
type SessionProduct int

const (
	Session10 SessionProduct = 10
	Session15 SessionProduct = 15
	Session20 SessionProduct = 20
)

// SessionProducts все допустимые продукты по возрастанию
var SessionProducts = []SessionProduct{Session10, Session15, Session20}

var blockDurations = map[SessionProduct]int{
	Session10: 30,
	Session15: 35,
	Session20: 40,
}

// ParseSessionProduct проверяет, что значение - допустимый продукт
func ParseSessionProduct(v int) (SessionProduct, error) {
	p := SessionProduct(v)
	if !p.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSessionProduct, v)
	}
	return p, nil
}

// IsValid возвращает true для 10, 15 и 20
func (p SessionProduct) IsValid() bool {
	_, ok := blockDurations[p]
	return ok
}

// BlockDuration длительность занятости трассы в минутах
func (p SessionProduct) BlockDuration() (int, error) {
	d, ok := blockDurations[p]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSessionProduct, int(p))
	}
	return d, nil
}
