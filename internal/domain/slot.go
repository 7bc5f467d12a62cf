package domain

import "time"

// ReservedInterval занятый интервал трассы [Start, End).
// EndDerived - бэкенд не прислал время окончания, End = Start + длительность блока
type ReservedInterval struct {
	Start      time.Time
	End        time.Time
	EndDerived bool
}

// WithDuration пересчитывает вычисленное окончание под новую длительность блока.
// Окончание, полученное от бэкенда, не меняется
func (r ReservedInterval) WithDuration(durationMinutes int) ReservedInterval {
	if !r.EndDerived || durationMinutes <= 0 {
		return r
	}
	r.End = r.Start.Add(time.Duration(durationMinutes) * time.Minute)
	return r
}

// Contains возвращает true, если t попадает в [Start, End)
func (r ReservedInterval) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// HourGroup количество свободных минутных стартов внутри часа
type HourGroup struct {
	Hour      int
	Bookable  int
	Available bool
}
