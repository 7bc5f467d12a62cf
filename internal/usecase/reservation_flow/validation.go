package reservation_flow

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
)

var nationalIDRe = regexp.MustCompile(domain.NationalIDPattern)

// validateActivity проверяет продукт и количество участников
func validateActivity(sessionProduct, participantCount int) FieldErrors {
	fields := FieldErrors{}

	if !domain.SessionProduct(sessionProduct).IsValid() {
		fields["sessionProduct"] = "must be one of 10, 15, 20"
	}

	if participantCount < domain.MinParticipants || participantCount > domain.MaxParticipants {
		fields["participantCount"] = fmt.Sprintf("must be between %d and %d", domain.MinParticipants, domain.MaxParticipants)
	}

	return fields
}

// validateParticipant проверяет поля участника.
// Запятая запрещена: бэкенд принимает участников параллельными списками через запятую
func validateParticipant(p domain.Participant) FieldErrors {
	fields := FieldErrors{}

	check := func(field, value string) bool {
		if value == "" {
			fields[field] = "is required"
			return false
		}
		if strings.Contains(value, domain.ListSeparator) {
			fields[field] = "must not contain commas"
			return false
		}
		return true
	}

	if check("nationalId", p.NationalID) && !nationalIDRe.MatchString(p.NationalID) {
		fields["nationalId"] = "must match 12345678-9"
	}
	check("name", p.Name)
	check("email", p.Email)

	return fields
}

// normalizeParticipant обрезает пробелы в полях
func normalizeParticipant(req ParticipantRequest) domain.Participant {
	return domain.Participant{
		NationalID: strings.TrimSpace(req.NationalID),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
	}
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// "Сегодня" берется в часовом поясе даты, то есть трассы
func isDateInPast(date, now time.Time) bool {
	now = now.In(date.Location())
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
