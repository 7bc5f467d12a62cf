package reservation_flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteBackendError(t *testing.T) {
	cases := []struct {
		name    string
		code    string
		message string
		step    Step
		field   string
	}{
		{"slot taken", "", "El horario seleccionado ya está ocupado", StepDateAndTime, "startTime"},
		{"overlap", "", "La reserva se superpone con otra existente", StepDateAndTime, "startTime"},
		{"past date", "", "No se puede reservar en una fecha pasada", StepDateAndTime, "date"},
		{"accented day", "", "El DÍA no es válido", StepDateAndTime, "date"},
		{"rut", "", "El RUT 1234 no es válido", StepParticipants, "nationalId"},
		{"email", "", "Correo electrónico inválido", StepParticipants, "email"},
		{"name", "", "El nombre del participante es obligatorio", StepParticipants, "name"},
		{"count", "", "La cantidad de personas excede el máximo", StepActivityDetails, "participantCount"},
		{"laps", "", "Número de vueltas no permitido", StepActivityDetails, "sessionProduct"},
		{"client", "", "El cliente no está registrado", StepParticipants, "participants"},
		{"code wins over text", "INVALID_EMAIL", "El horario no está disponible", StepParticipants, "email"},
		{"code is case insensitive", "slot_unavailable", "", StepDateAndTime, "startTime"},
		{"unknown code falls back to text", "SOMETHING", "Fecha inválida", StepDateAndTime, "date"},
		{"no match", "", "Error desconocido", StepReview, ""},
		{"empty", "", "", StepReview, ""},
		{"keyword inside word", "", "Trouble", StepReview, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			step, field := routeBackendError(tc.code, tc.message)
			assert.Equal(t, tc.step, step)
			assert.Equal(t, tc.field, field)
		})
	}
}

func TestMessageWords(t *testing.T) {
	assert.Equal(t, []string{"el", "dia", "esta", "ocupado"}, messageWords("El día, está ¡ocupado!"))
	assert.Empty(t, messageWords("  ,.  "))
}
