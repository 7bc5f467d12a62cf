package reservation_flow

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// errorRoute правило маршрутизации ошибки бэкенда на шаг и поле.
// Ключевые слова сравниваются как префиксы слов сообщения без регистра и диакритики
type errorRoute struct {
	code     string
	keywords []string
	step     Step
	field    string
}

// Порядок важен: срабатывает первое подходящее правило
var errorRoutes = []errorRoute{
	{code: "SLOT_UNAVAILABLE", keywords: []string{"hora", "horario", "bloque", "superpon", "ocupad", "disponib"}, step: StepDateAndTime, field: "startTime"},
	{code: "INVALID_DATE", keywords: []string{"fecha", "feriado", "dia"}, step: StepDateAndTime, field: "date"},
	{code: "INVALID_NATIONAL_ID", keywords: []string{"rut"}, step: StepParticipants, field: "nationalId"},
	{code: "INVALID_EMAIL", keywords: []string{"correo", "email", "mail"}, step: StepParticipants, field: "email"},
	{code: "INVALID_NAME", keywords: []string{"nombre"}, step: StepParticipants, field: "name"},
	{code: "INVALID_PARTICIPANT_COUNT", keywords: []string{"personas", "cantidad"}, step: StepActivityDetails, field: "participantCount"},
	{code: "INVALID_SESSION_PRODUCT", keywords: []string{"vuelta", "laps", "minuto"}, step: StepActivityDetails, field: "sessionProduct"},
	{code: "INVALID_PARTICIPANTS", keywords: []string{"cliente", "participante", "integrante"}, step: StepParticipants, field: "participants"},
}

// routeBackendError определяет шаг и поле для ошибки бэкенда.
// Структурированный код имеет приоритет над текстом. Без совпадений - общая ошибка шага Review
func routeBackendError(code, message string) (Step, string) {
	if code != "" {
		for _, r := range errorRoutes {
			if strings.EqualFold(r.code, code) {
				return r.step, r.field
			}
		}
	}

	words := messageWords(message)
	for _, r := range errorRoutes {
		if matchesAny(words, r.keywords) {
			return r.step, r.field
		}
	}

	return StepReview, ""
}

func matchesAny(words, keywords []string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if strings.HasPrefix(w, k) {
				return true
			}
		}
	}
	return false
}

// messageWords разбивает сообщение на слова в нижнем регистре без диакритики
func messageWords(message string) []string {
	folded, _, err := transform.String(accentFolder(), message)
	if err != nil {
		folded = message
	}
	return strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// accentFolder создается на каждый вызов: transform.Transformer не потокобезопасен
func accentFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
