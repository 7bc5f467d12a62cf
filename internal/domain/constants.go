package domain

// Значения по умолчанию для часов работы трассы
const (
	DefaultWeekdayOpen = "14:00"
	DefaultWeekendOpen = "10:00"
	DefaultClose       = "22:00"
)

// DefaultHolidays ежегодные праздники: Новый год, День труда, Fiestas Patrias, Рождество
var DefaultHolidays = []string{"01-01", "05-01", "09-18", "09-19", "12-25"}

// Ограничения бизнес-валидации
const (
	MinParticipants = 1
	MaxParticipants = 15
)

// Форматы даты и времени
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	MonthFormat    = "2006-01"    // YYYY-MM
	MonthDayFormat = "01-02"      // MM-DD
)

// ListSeparator разделитель параллельных списков участников в запросе к бэкенду
const ListSeparator = ","

// NationalIDPattern формат RUT: 7-8 цифр, дефис, контрольный символ
const NationalIDPattern = `^\d{7,8}-[0-9kK]$`
