package reservation_flow

import (
	"github.com/m04kA/SMC-KartingFront/internal/domain"
	reservationFlow "github.com/m04kA/SMC-KartingFront/internal/usecase/reservation_flow"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// ActivityRequest тело PUT /reservations/{id}/activity
type ActivityRequest struct {
	Laps             int `json:"laps"`
	ParticipantCount int `json:"participantCount"`
}

// DateRequest тело PUT /reservations/{id}/date
type DateRequest struct {
	Date string `json:"date"` // "2025-06-10"
}

// TimeRequest тело PUT /reservations/{id}/time
type TimeRequest struct {
	StartTime string `json:"startTime"` // "15:00"
}

// ParticipantRequest тело POST /reservations/{id}/participants
type ParticipantRequest struct {
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// StateResponse состояние потока бронирования
type StateResponse struct {
	ID              string         `json:"id"`
	Step            string         `json:"step"`
	StepNumber      int            `json:"stepNumber"`
	Draft           DraftResponse  `json:"draft"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           SlotsResponse  `json:"slots"`
	LastError       *StepErrorBody `json:"lastError,omitempty"`
	BookingID       *int64         `json:"bookingId,omitempty"`
}

// DraftResponse черновик бронирования
type DraftResponse struct {
	Date             string                `json:"date,omitempty"`
	StartTime        string                `json:"startTime,omitempty"`
	EndTime          string                `json:"endTime,omitempty"`
	Laps             int                   `json:"laps,omitempty"`
	ParticipantCount int                   `json:"participantCount,omitempty"`
	Participants     []ParticipantResponse `json:"participants"`
}

// ParticipantResponse участник черновика
type ParticipantResponse struct {
	Index      int    `json:"index"`
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// SlotsResponse состояние загрузки занятых интервалов
type SlotsResponse struct {
	Date     string             `json:"date,omitempty"`
	Loading  bool               `json:"loading"`
	Ready    bool               `json:"ready"`
	Reserved []IntervalResponse `json:"reserved"`
}

// IntervalResponse занятый интервал трассы
type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StepErrorBody ошибка, привязанная к шагу и полю
type StepErrorBody struct {
	Kind    string `json:"kind"`
	Step    string `json:"step"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// FlowErrorResponse тело ответа с ошибкой и текущим состоянием потока
type FlowErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	State  *StateResponse    `json:"state,omitempty"`
}

// ToUseCaseActivity конвертирует запрос в модель use case
func (r *ActivityRequest) ToUseCaseActivity() reservationFlow.ActivityRequest {
	return reservationFlow.ActivityRequest{
		SessionProduct:   r.Laps,
		ParticipantCount: r.ParticipantCount,
	}
}

// ToUseCaseParticipant конвертирует запрос в модель use case
func (r *ParticipantRequest) ToUseCaseParticipant() reservationFlow.ParticipantRequest {
	return reservationFlow.ParticipantRequest{
		NationalID: r.NationalID,
		Name:       r.Name,
		Email:      r.Email,
	}
}

// FromState конвертирует состояние use case в HTTP response
func FromState(s *reservationFlow.State) *StateResponse {
	if s == nil {
		return nil
	}

	d := s.Draft
	draft := DraftResponse{
		Laps:             int(d.SessionProduct),
		ParticipantCount: d.ParticipantCount,
	}
	if d.HasDate() {
		draft.Date = d.Date.Format(domain.DateFormat)
	}
	if d.HasStartTime() {
		draft.StartTime = d.StartTime.String()
		if s.DurationMinutes > 0 {
			if end, err := d.StartTime.AddMinutes(s.DurationMinutes); err == nil {
				draft.EndTime = end.String()
			}
		}
	}

	participants := d.Participants()
	draft.Participants = make([]ParticipantResponse, len(participants))
	for i, p := range participants {
		draft.Participants[i] = ParticipantResponse{
			Index:      i,
			NationalID: p.NationalID,
			Name:       p.Name,
			Email:      p.Email,
		}
	}

	slots := SlotsResponse{
		Loading:  s.Slots.Loading,
		Ready:    s.Slots.Ready,
		Reserved: make([]IntervalResponse, len(s.Slots.Reserved)),
	}
	if !s.Slots.Date.IsZero() {
		slots.Date = s.Slots.Date.Format(domain.DateFormat)
	}
	for i, r := range s.Slots.Reserved {
		slots.Reserved[i] = IntervalResponse{
			Start: types.NewTimeString(r.Start).String(),
			End:   types.NewTimeString(r.End).String(),
		}
	}

	resp := &StateResponse{
		ID:              s.ID,
		Step:            s.Step.String(),
		StepNumber:      int(s.Step),
		Draft:           draft,
		DurationMinutes: s.DurationMinutes,
		Slots:           slots,
	}

	if s.LastError != nil {
		resp.LastError = &StepErrorBody{
			Kind:    string(s.LastError.Kind),
			Step:    s.LastError.Step.String(),
			Field:   s.LastError.Field,
			Message: s.LastError.Message,
		}
	}

	if s.BookingID != 0 {
		id := s.BookingID
		resp.BookingID = &id
	}

	return resp
}
