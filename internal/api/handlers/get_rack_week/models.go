package get_rack_week

import (
	"github.com/m04kA/SMC-KartingFront/internal/domain"
	getRackWeek "github.com/m04kA/SMC-KartingFront/internal/usecase/get_rack_week"
)

// RackResponse HTTP response model
type RackResponse struct {
	WeekStart string        `json:"weekStart"`
	WeekEnd   string        `json:"weekEnd"`
	Days      []DayResponse `json:"days"`
}

// DayResponse колонка рэка
type DayResponse struct {
	Date     string          `json:"date"`
	DayClass string          `json:"dayClass"`
	Open     string          `json:"open"`
	Close    string          `json:"close"`
	Entries  []EntryResponse `json:"entries"`
}

// EntryResponse бронирование в колонке
type EntryResponse struct {
	BookingID   int64  `json:"bookingId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Laps        int    `json:"laps"`
	NumOfPeople int    `json:"numOfPeople"`
	HolderName  string `json:"holderName"`
	Status      string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRackWeek.Response) *RackResponse {
	out := &RackResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:   resp.WeekEnd.Format(domain.DateFormat),
		Days:      make([]DayResponse, len(resp.Days)),
	}

	for i, day := range resp.Days {
		entries := make([]EntryResponse, len(day.Entries))
		for j, e := range day.Entries {
			entries[j] = EntryResponse{
				BookingID:   e.BookingID,
				StartTime:   e.StartTime.String(),
				EndTime:     e.EndTime.String(),
				Laps:        int(e.SessionProduct),
				NumOfPeople: e.NumOfPeople,
				HolderName:  e.HolderName,
				Status:      string(e.Status),
			}
		}
		out.Days[i] = DayResponse{
			Date:     day.Date.Format(domain.DateFormat),
			DayClass: string(day.DayClass),
			Open:     day.Open.String(),
			Close:    day.Close.String(),
			Entries:  entries,
		}
	}
	return out
}
