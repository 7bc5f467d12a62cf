package get_sales_report

import (
	"github.com/m04kA/SMC-KartingFront/internal/domain"
	getSalesReport "github.com/m04kA/SMC-KartingFront/internal/usecase/get_sales_report"
)

// SalesReportResponse HTTP response model
type SalesReportResponse struct {
	From        string        `json:"from"` // "2025-01"
	To          string        `json:"to"`
	Months      []string      `json:"months"`
	ByProduct   TableResponse `json:"byProduct"`
	ByGroupSize TableResponse `json:"byGroupSize"`
}

// TableResponse таблица выручки
type TableResponse struct {
	Rows       []RowResponse `json:"rows"`
	Totals     []float64     `json:"totals"`
	GrandTotal float64       `json:"grandTotal"`
}

// RowResponse строка таблицы
type RowResponse struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Total  float64   `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSalesReport.Response) *SalesReportResponse {
	return &SalesReportResponse{
		From:        resp.From.Format(domain.MonthFormat),
		To:          resp.To.Format(domain.MonthFormat),
		Months:      resp.Months,
		ByProduct:   fromTable(resp.ByProduct),
		ByGroupSize: fromTable(resp.ByGroupSize),
	}
}

func fromTable(t getSalesReport.Table) TableResponse {
	rows := make([]RowResponse, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = RowResponse{
			Label:  r.Label,
			Values: r.Values,
			Total:  r.Total,
		}
	}
	return TableResponse{
		Rows:       rows,
		Totals:     t.Totals,
		GrandTotal: t.GrandTotal,
	}
}
