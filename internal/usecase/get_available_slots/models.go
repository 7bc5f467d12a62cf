package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// Request модель запроса доступных времен
type Request struct {
	Date           time.Time // Дата (без времени)
	SessionProduct int       // 10, 15 или 20
	Hour           *int      // Если указан - перечислить минуты этого часа
}

// Response модель ответа
type Response struct {
	Date            time.Time
	SessionProduct  domain.SessionProduct
	DurationMinutes int
	DayClass        domain.DayClass
	Open            types.TimeString
	Close           types.TimeString
	Hour            *int
	Times           []types.TimeString // Только если запрошен час
	HourGroups      []domain.HourGroup // Только если час не запрошен
}
