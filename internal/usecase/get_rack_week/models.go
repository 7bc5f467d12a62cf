package get_rack_week

import (
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// Request модель запроса рэка
type Request struct {
	Date time.Time // Любой день недели
}

// Entry бронирование в ячейке рэка
type Entry struct {
	BookingID      int64
	StartTime      types.TimeString
	EndTime        types.TimeString
	SessionProduct domain.SessionProduct
	NumOfPeople    int
	HolderName     string
	Status         domain.BookingStatus
}

// Day колонка рэка
type Day struct {
	Date     time.Time
	DayClass domain.DayClass
	Open     types.TimeString
	Close    types.TimeString
	Entries  []Entry // по времени старта
}

// Response модель ответа: неделя с понедельника по воскресенье
type Response struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Days      [7]Day
}
