package get_sales_report

import "time"

// Request модель запроса отчета. Месяцы в формате YYYY-MM, включительно
type Request struct {
	From string
	To   string
}

// Row строка отчета: выручка по месяцам и итог
type Row struct {
	Label  string
	Values []float64 // по Months
	Total  float64
}

// Table таблица отчета с итогами по колонкам
type Table struct {
	Rows       []Row
	Totals     []float64 // по Months
	GrandTotal float64
}

// Response модель ответа
type Response struct {
	From        time.Time
	To          time.Time
	Months      []string // YYYY-MM
	ByProduct   Table
	ByGroupSize Table
}

// groupBucket диапазон размера группы [min, max]
type groupBucket struct {
	label string
	min   int
	max   int
}

var groupBuckets = []groupBucket{
	{label: "1-2", min: 1, max: 2},
	{label: "3-5", min: 3, max: 5},
	{label: "6-10", min: 6, max: 10},
	{label: "11-15", min: 11, max: 15},
}
