package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/api/handlers"
	"github.com/m04kA/SMC-KartingFront/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-KartingFront/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string      `json:"date"`
	SessionProduct  int         `json:"laps"`
	DurationMinutes int         `json:"durationMinutes"`
	DayClass        string      `json:"dayClass"`
	Open            string      `json:"open"`
	Close           string      `json:"close"`
	Hour            *int        `json:"hour,omitempty"`
	Times           []string    `json:"times"`      // null, если час не указан
	HourGroups      []HourGroup `json:"hourGroups"` // null, если час указан
}

// HourGroup доступность часа
type HourGroup struct {
	Hour      int  `json:"hour"`
	Bookable  int  `json:"bookable"`
	Available bool `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SessionProduct:  int(resp.SessionProduct),
		DurationMinutes: resp.DurationMinutes,
		DayClass:        string(resp.DayClass),
		Open:            resp.Open.String(),
		Close:           resp.Close.String(),
		Hour:            resp.Hour,
	}

	if resp.Hour != nil {
		out.Times = make([]string, len(resp.Times))
		for i, t := range resp.Times {
			out.Times[i] = t.String()
		}
		return out
	}

	out.HourGroups = make([]HourGroup, len(resp.HourGroups))
	for i, g := range resp.HourGroups {
		out.HourGroups[i] = HourGroup{
			Hour:      g.Hour,
			Bookable:  g.Bookable,
			Available: g.Available,
		}
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, lapsStr, hourStr string, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := handlers.ParseDate(dateStr, loc)
	if err != nil {
		return nil, errInvalidDate
	}

	laps, err := strconv.Atoi(lapsStr)
	if err != nil {
		return nil, errInvalidLaps
	}

	req := &getAvailableSlots.Request{
		Date:           date,
		SessionProduct: laps,
	}

	if hourStr != "" {
		hour, err := strconv.Atoi(hourStr)
		if err != nil {
			return nil, errInvalidHour
		}
		req.Hour = &hour
	}

	return req, nil
}
