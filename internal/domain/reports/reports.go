// Package reports is the sales aggregation engine: it folds a snapshot of
// sales into the finance report shapes. Every function here is pure; the
// snapshot is never modified.
package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rutvans_api/internal/domain/entities"
)

// Summary is the whole-ledger report.
type Summary struct {
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	Balance        decimal.Decimal
	DailyBreakdown []DailyTotal
	Transactions   []entities.Sale
}

type DailyTotal struct {
	Date  string
	Total decimal.Decimal
}

// DetailLine is one sale as shown in the daily detail.
type DetailLine struct {
	Folio     string
	CreatedAt time.Time
	Amount    decimal.Decimal
}

type PeriodTotals struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal
}

type RouteShare struct {
	Name            string
	Amount          decimal.Decimal
	FormattedAmount string
	Share           float64
}

type BalancePoint struct {
	Date    string
	Balance decimal.Decimal
}

// Summarize computes income over every sale. Expenses are not tracked, so
// they are always zero and balance equals income.
func Summarize(sales []entities.Sale) Summary {
	income := decimal.Zero
	for _, s := range sales {
		income = SumAmount(income, s)
	}
	expenses := decimal.Zero

	days := GroupBy(sales, DayKey, SumAmount)
	breakdown := make([]DailyTotal, 0, len(days))
	for _, g := range days {
		breakdown = append(breakdown, DailyTotal{Date: g.Key, Total: g.Value})
	}

	transactions := make([]entities.Sale, len(sales))
	copy(transactions, sales)

	return Summary{
		Income:         income,
		Expenses:       expenses,
		Balance:        income.Sub(expenses),
		DailyBreakdown: breakdown,
		Transactions:   transactions,
	}
}

// Detail projects sales to detail lines, keeping snapshot order.
func Detail(sales []entities.Sale) []DetailLine {
	lines := make([]DetailLine, 0, len(sales))
	for _, s := range sales {
		lines = append(lines, DetailLine{
			Folio:     s.DisplayFolio(),
			CreatedAt: s.CreatedAt,
			Amount:    amountOf(s),
		})
	}
	return lines
}

// Totals sums sales and averages them. The average of no sales is zero.
func Totals(sales []entities.Sale) PeriodTotals {
	total := decimal.Zero
	for _, s := range sales {
		total = SumAmount(total, s)
	}
	out := PeriodTotals{Total: total, Count: len(sales), Average: decimal.Zero}
	if out.Count > 0 {
		out.Average = total.Div(decimal.NewFromInt(int64(out.Count)))
	}
	return out
}

// RankRoutes groups sales by route and orders routes by their share of the
// grand total, largest first. Equal shares are ordered by route name.
func RankRoutes(sales []entities.Sale) []RouteShare {
	routes := GroupBy(sales, RouteKey, SumAmount)

	grandTotal := decimal.Zero
	for _, g := range routes {
		grandTotal = grandTotal.Add(g.Value)
	}

	ranking := make([]RouteShare, 0, len(routes))
	for _, g := range routes {
		share := 0.0
		if grandTotal.IsPositive() {
			share = g.Value.Div(grandTotal).InexactFloat64()
		}
		ranking = append(ranking, RouteShare{
			Name:            g.Key,
			Amount:          g.Value,
			FormattedAmount: FormatCurrency(g.Value),
			Share:           share,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Share != ranking[j].Share {
			return ranking[i].Share > ranking[j].Share
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking
}

// Balance groups sales per day or month and orders the points
// chronologically. Keys are fixed-width, so string order is date order.
func Balance(sales []entities.Sale, period Period) []BalancePoint {
	groups := GroupBy(sales, keyFor(period), SumAmount)

	points := make([]BalancePoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, BalancePoint{Date: g.Key, Balance: g.Value})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return strings.Compare(points[i].Date, points[j].Date) < 0
	})
	return points
}

// FormatCurrency renders an amount with a dollar sign and two decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
