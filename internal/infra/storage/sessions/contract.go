package sessions

import "time"

// Session элемент хранилища: черновик с идентификатором и временем последней активности
type Session interface {
	ID() string
	LastActivity() time.Time
}
