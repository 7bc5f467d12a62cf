package reservation_flow

import (
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// Step шаг потока бронирования
type Step int

const (
	StepActivityDetails Step = iota + 1
	StepDateAndTime
	StepParticipants
	StepReview
	StepSubmitted
	StepAbandoned
)

var stepNames = map[Step]string{
	StepActivityDetails: "activity_details",
	StepDateAndTime:     "date_and_time",
	StepParticipants:    "participants",
	StepReview:          "review",
	StepSubmitted:       "submitted",
	StepAbandoned:       "abandoned",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal возвращает true для Submitted и Abandoned
func (s Step) IsTerminal() bool {
	return s == StepSubmitted || s == StepAbandoned
}

// ErrorKind категория последней ошибки потока
type ErrorKind string

const (
	ErrorKindBackend ErrorKind = "backend"
	ErrorKindNetwork ErrorKind = "network"
)

// StepError ошибка, привязанная к шагу и полю (для подсветки в UI)
type StepError struct {
	Kind    ErrorKind
	Step    Step
	Field   string // пусто для общих ошибок
	Message string
}

// SlotsState состояние загрузки занятых интервалов для выбранной даты
type SlotsState struct {
	Date     time.Time
	Loading  bool
	Ready    bool
	Reserved []domain.ReservedInterval
}

// State снимок потока бронирования
type State struct {
	ID              string
	Step            Step
	Draft           domain.BookingDraft
	DurationMinutes int // 0, пока продукт не выбран
	Slots           SlotsState
	LastError       *StepError
	BookingID       int64 // после успешной отправки
}

// ActivityRequest параметры шага 1
type ActivityRequest struct {
	SessionProduct   int
	ParticipantCount int
}

// ParticipantRequest участник для добавления
type ParticipantRequest struct {
	NationalID string
	Name       string
	Email      string
}

// TimeRequest выбор времени старта
type TimeRequest struct {
	StartTime types.TimeString
}
