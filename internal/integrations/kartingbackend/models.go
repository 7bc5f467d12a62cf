package kartingbackend

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// Booking модель бронирования бэкенда
type Booking struct {
	ID                   int64   `json:"id"`
	BookingDate          string  `json:"bookingDate"`    // "2025-06-10"
	BookingTime          string  `json:"bookingTime"`    // "15:00"
	BookingTimeEnd       string  `json:"bookingTimeEnd"` // "15:30"
	LapsOrMaxTimeAllowed int     `json:"lapsOrMaxTimeAllowed"`
	NumOfPeople          int     `json:"numOfPeople"`
	RutUser              string  `json:"rutUser"`
	RutsUsers            string  `json:"rutsUsers"`
	NamesUsers           string  `json:"namesUsers"`
	EmailsUsers          string  `json:"emailsUsers"`
	BookingStatus        string  `json:"bookingStatus"`
	TotalAmount          float64 `json:"totalAmount"`
}

// SubmitBookingRequest тело запроса на создание бронирования.
// Участники передаются параллельными списками через запятую: позиция связывает поля одного участника
type SubmitBookingRequest struct {
	BookingDate          string `json:"bookingDate"`
	BookingTime          string `json:"bookingTime"`
	BookingTimeEnd       string `json:"bookingTimeEnd"`
	LapsOrMaxTimeAllowed int    `json:"lapsOrMaxTimeAllowed"`
	NumOfPeople          int    `json:"numOfPeople"`
	RutUser              string `json:"rutUser"`
	RutsUsers            string `json:"rutsUsers"`
	NamesUsers           string `json:"namesUsers"`
	EmailsUsers          string `json:"emailsUsers"`
}

// ClientRecord модель клиента трассы
type ClientRecord struct {
	ID        int64  `json:"id,omitempty"`
	Rut       string `json:"rut"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"` // "1990-04-21"
}

// ErrorResponse модель ошибки от бэкенда (вариант с объектом)
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// NewSubmitBookingRequest собирает тело запроса из черновика
func NewSubmitBookingRequest(draft domain.BookingDraft) (*SubmitBookingRequest, error) {
	duration, err := draft.SessionProduct.BlockDuration()
	if err != nil {
		return nil, err
	}

	end, err := draft.StartTime.AddMinutes(duration)
	if err != nil {
		return nil, fmt.Errorf("%w: booking end: %v", ErrInternal, err)
	}

	participants := draft.Participants()
	ruts := make([]string, len(participants))
	names := make([]string, len(participants))
	emails := make([]string, len(participants))
	for i, p := range participants {
		ruts[i] = p.NationalID
		names[i] = p.Name
		emails[i] = p.Email
	}

	holder := ""
	if len(ruts) > 0 {
		holder = ruts[0]
	}

	return &SubmitBookingRequest{
		BookingDate:          draft.Date.Format(domain.DateFormat),
		BookingTime:          draft.StartTime.String(),
		BookingTimeEnd:       end.String(),
		LapsOrMaxTimeAllowed: int(draft.SessionProduct),
		NumOfPeople:          draft.ParticipantCount,
		RutUser:              holder,
		RutsUsers:            strings.Join(ruts, domain.ListSeparator),
		NamesUsers:           strings.Join(names, domain.ListSeparator),
		EmailsUsers:          strings.Join(emails, domain.ListSeparator),
	}, nil
}

// ToDomain конвертирует бронирование бэкенда в доменную модель
func (b *Booking) ToDomain(loc *time.Location) (*domain.Booking, error) {
	date, err := time.ParseInLocation(domain.DateFormat, b.BookingDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d date %q", ErrInvalidResponse, b.ID, b.BookingDate)
	}

	start, err := types.NewTimeStringFromString(normalizeTime(b.BookingTime))
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d time %q", ErrInvalidResponse, b.ID, b.BookingTime)
	}

	product := domain.SessionProduct(b.LapsOrMaxTimeAllowed)

	end, err := types.NewTimeStringFromString(normalizeTime(b.BookingTimeEnd))
	if err != nil {
		// Бэкенд не всегда отдает конец - считаем по длительности блока
		duration, derr := product.BlockDuration()
		if derr != nil {
			return nil, fmt.Errorf("%w: booking id=%d end %q", ErrInvalidResponse, b.ID, b.BookingTimeEnd)
		}
		end, err = start.AddMinutes(duration)
		if err != nil {
			return nil, fmt.Errorf("%w: booking id=%d end: %v", ErrInvalidResponse, b.ID, err)
		}
	}

	return &domain.Booking{
		ID:               b.ID,
		BookingDate:      date,
		StartTime:        start,
		EndTime:          end,
		SessionProduct:   product,
		NumOfPeople:      b.NumOfPeople,
		HolderNationalID: b.RutUser,
		Participants:     splitParticipants(b.RutsUsers, b.NamesUsers, b.EmailsUsers),
		Status:           parseStatus(b.BookingStatus),
		TotalAmount:      b.TotalAmount,
	}, nil
}

// BookingsToDomain конвертирует список бронирований
func BookingsToDomain(list []Booking, loc *time.Location) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(list))
	for i := range list {
		b, err := list[i].ToDomain(loc)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// splitParticipants собирает участников из параллельных списков по позиции
func splitParticipants(ruts, names, emails string) []domain.Participant {
	r := splitList(ruts)
	n := splitList(names)
	e := splitList(emails)

	count := max(len(r), len(n), len(e))
	out := make([]domain.Participant, count)
	for i := 0; i < count; i++ {
		out[i] = domain.Participant{
			NationalID: at(r, i),
			Name:       at(n, i),
			Email:      at(e, i),
		}
	}
	return out
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, domain.ListSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}

// normalizeTime обрезает секунды: бэкенд может отдавать "15:00:00"
func normalizeTime(s string) string {
	if len(s) == len("15:04:05") {
		return s[:5]
	}
	return s
}

func parseStatus(s string) domain.BookingStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed", "confirmada":
		return domain.StatusConfirmed
	case "cancelled", "canceled", "cancelada":
		return domain.StatusCancelled
	default:
		return domain.StatusPending
	}
}

// parseErrorBody извлекает сообщение и код из тела ошибки.
// Бэкенд отдает либо голую строку (JSON или текст), либо объект с message/error
func parseErrorBody(body []byte) (message string, code string) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", ""
	}

	var asString string
	if err := json.Unmarshal([]byte(trimmed), &asString); err == nil {
		return asString, ""
	}

	var asObject ErrorResponse
	if err := json.Unmarshal([]byte(trimmed), &asObject); err == nil {
		msg := asObject.Message
		if msg == "" {
			msg = asObject.Error
		}
		if msg != "" || asObject.Code != "" {
			return msg, asObject.Code
		}
	}

	return trimmed, ""
}

// normalizeTimes приводит список HH:MM[:SS] к HH:MM
func normalizeTimes(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = normalizeTime(strings.TrimSpace(s))
	}
	return out
}
