package response

import (
	"time"

	"rutvans_api/internal/domain/reports"
)

type SummaryResponse struct {
	Income         float64              `json:"income"`
	Expenses       float64              `json:"expenses"`
	Balance        float64              `json:"balance"`
	DailyBreakdown []DailyTotalResponse `json:"dailyBreakdown"`
	Transactions   []SaleResponse       `json:"transactions"`
}

type DailyTotalResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type DetailLineResponse struct {
	Folio     string    `json:"folio"`
	CreatedAt time.Time `json:"createdAt"`
	Amount    float64   `json:"amount"`
}

type PeriodTotalsResponse struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type RouteShareResponse struct {
	Name            string  `json:"name"`
	FormattedAmount string  `json:"formattedAmount"`
	Share           float64 `json:"share"`
}

type BalancePointResponse struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

func FromSummary(s reports.Summary) SummaryResponse {
	breakdown := make([]DailyTotalResponse, 0, len(s.DailyBreakdown))
	for _, d := range s.DailyBreakdown {
		breakdown = append(breakdown, DailyTotalResponse{Date: d.Date, Total: d.Total.InexactFloat64()})
	}
	return SummaryResponse{
		Income:         s.Income.InexactFloat64(),
		Expenses:       s.Expenses.InexactFloat64(),
		Balance:        s.Balance.InexactFloat64(),
		DailyBreakdown: breakdown,
		Transactions:   FromSales(s.Transactions),
	}
}

func FromDetailLines(lines []reports.DetailLine) []DetailLineResponse {
	out := make([]DetailLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, DetailLineResponse{Folio: l.Folio, CreatedAt: l.CreatedAt, Amount: l.Amount.InexactFloat64()})
	}
	return out
}

func FromPeriodTotals(t reports.PeriodTotals) PeriodTotalsResponse {
	return PeriodTotalsResponse{
		Total:   t.Total.InexactFloat64(),
		Count:   t.Count,
		Average: t.Average.InexactFloat64(),
	}
}

func FromRouteShares(routes []reports.RouteShare) []RouteShareResponse {
	out := make([]RouteShareResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteShareResponse{Name: r.Name, FormattedAmount: r.FormattedAmount, Share: r.Share})
	}
	return out
}

func FromBalancePoints(points []reports.BalancePoint) []BalancePointResponse {
	out := make([]BalancePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, BalancePointResponse{Date: p.Date, Balance: p.Balance.InexactFloat64()})
	}
	return out
}
