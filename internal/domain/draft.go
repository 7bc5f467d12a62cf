package domain

import (
	"time"

	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// Participant участник заезда
type Participant struct {
	NationalID string
	Name       string
	Email      string
}

// BookingDraft черновик бронирования.
// Значение неизменяемо: каждый With*-метод возвращает новый черновик
type BookingDraft struct {
	Date             time.Time // без времени, zero = не выбрана
	StartTime        types.TimeString
	SessionProduct   SessionProduct
	ParticipantCount int
	participants     []Participant
}

// NewBookingDraft создает пустой черновик
func NewBookingDraft() BookingDraft {
	return BookingDraft{}
}

// Participants возвращает копию списка участников
func (d BookingDraft) Participants() []Participant {
	out := make([]Participant, len(d.participants))
	copy(out, d.participants)
	return out
}

// ParticipantsLen количество добавленных участников
func (d BookingDraft) ParticipantsLen() int {
	return len(d.participants)
}

// HasDate возвращает true, если дата выбрана
func (d BookingDraft) HasDate() bool {
	return !d.Date.IsZero()
}

// HasStartTime возвращает true, если время начала выбрано
func (d BookingDraft) HasStartTime() bool {
	return !d.StartTime.IsZero()
}

// StartAt момент начала заезда (zero, если дата или время не выбраны)
func (d BookingDraft) StartAt() time.Time {
	if !d.HasDate() || !d.HasStartTime() {
		return time.Time{}
	}
	return d.StartTime.On(d.Date)
}

// WithActivity задает продукт и количество участников
func (d BookingDraft) WithActivity(product SessionProduct, count int) BookingDraft {
	d.SessionProduct = product
	d.ParticipantCount = count
	d.participants = d.Participants()
	return d
}

// WithDate задает дату и сбрасывает выбранное время
func (d BookingDraft) WithDate(date time.Time) BookingDraft {
	y, m, day := date.Date()
	d.Date = time.Date(y, m, day, 0, 0, 0, 0, date.Location())
	d.StartTime = ""
	d.participants = d.Participants()
	return d
}

// WithStartTime задает время начала
func (d BookingDraft) WithStartTime(t types.TimeString) BookingDraft {
	d.StartTime = t
	d.participants = d.Participants()
	return d
}

// WithoutStartTime сбрасывает время начала
func (d BookingDraft) WithoutStartTime() BookingDraft {
	return d.WithStartTime("")
}

// WithParticipant добавляет участника в конец списка
func (d BookingDraft) WithParticipant(p Participant) BookingDraft {
	list := make([]Participant, len(d.participants), len(d.participants)+1)
	copy(list, d.participants)
	d.participants = append(list, p)
	return d
}

// WithoutParticipant удаляет участника по позиции.
// Индекс вне диапазона возвращает черновик без изменений
func (d BookingDraft) WithoutParticipant(index int) BookingDraft {
	if index < 0 || index >= len(d.participants) {
		return d
	}
	list := make([]Participant, 0, len(d.participants)-1)
	list = append(list, d.participants[:index]...)
	list = append(list, d.participants[index+1:]...)
	d.participants = list
	return d
}
