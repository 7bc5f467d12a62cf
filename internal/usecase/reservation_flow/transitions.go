package reservation_flow

import (
	"fmt"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
)

// transition разрешенные переходы из шага.
// Нулевой next/back означает, что переход отсутствует
type transition struct {
	next  Step
	back  Step
	guard func(domain.BookingDraft) error // условие перехода вперед
}

// Review -> Submitted выполняется только через Submit
var transitions = map[Step]transition{
	StepActivityDetails: {next: StepDateAndTime, guard: guardActivityDetails},
	StepDateAndTime:     {next: StepParticipants, back: StepActivityDetails, guard: guardDateAndTime},
	StepParticipants:    {next: StepReview, back: StepDateAndTime, guard: guardParticipants},
	StepReview:          {back: StepParticipants},
}

func guardActivityDetails(d domain.BookingDraft) error {
	fields := validateActivity(int(d.SessionProduct), d.ParticipantCount)
	if len(fields) > 0 {
		return newValidationError(StepActivityDetails, fields)
	}
	return nil
}

func guardDateAndTime(d domain.BookingDraft) error {
	fields := FieldErrors{}
	if !d.HasDate() {
		fields["date"] = "date is required"
	}
	if !d.HasStartTime() {
		fields["startTime"] = "start time is required"
	}
	if len(fields) > 0 {
		return newValidationError(StepDateAndTime, fields)
	}
	return nil
}

func guardParticipants(d domain.BookingDraft) error {
	if d.ParticipantsLen() != d.ParticipantCount {
		return newValidationError(StepParticipants, FieldErrors{
			"participants": fmt.Sprintf("expected %d participants, got %d", d.ParticipantCount, d.ParticipantsLen()),
		})
	}
	return nil
}

// guardSubmit повторная проверка всех условий перед отправкой
func guardSubmit(d domain.BookingDraft) error {
	for _, guard := range []func(domain.BookingDraft) error{guardActivityDetails, guardDateAndTime, guardParticipants} {
		if err := guard(d); err != nil {
			return err
		}
	}
	return nil
}
