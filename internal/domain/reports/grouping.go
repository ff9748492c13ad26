package reports

import (
	"github.com/shopspring/decimal"

	"rutvans_api/internal/domain/entities"
)

// KeyFunc derives the group a sale belongs to.
type KeyFunc func(entities.Sale) string

// FoldFunc adds one sale to a group's running value.
type FoldFunc[V any] func(acc V, s entities.Sale) V

// Group is one bucket produced by GroupBy.
type Group[V any] struct {
	Key   string
	Value V
}

// GroupBy folds sales into buckets in a single pass. Buckets come back in the
// order their key first appeared in sales; callers sort explicitly when they
// need another order.
func GroupBy[V any](sales []entities.Sale, key KeyFunc, fold FoldFunc[V]) []Group[V] {
	index := make(map[string]int)
	groups := make([]Group[V], 0)
	for _, s := range sales {
		k := key(s)
		i, ok := index[k]
		if !ok {
			var zero V
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[V]{Key: k, Value: zero})
		}
		groups[i].Value = fold(groups[i].Value, s)
	}
	return groups
}

// DayKey buckets by UTC calendar day, YYYY-MM-DD.
func DayKey(s entities.Sale) string {
	return s.CreatedAt.UTC().Format("2006-01-02")
}

// MonthKey buckets by UTC calendar month, YYYY-MM.
func MonthKey(s entities.Sale) string {
	return s.CreatedAt.UTC().Format("2006-01")
}

// RouteKey buckets by route label.
func RouteKey(s entities.Sale) string {
	return s.Route()
}

// SumAmount is the fold used by every total in this package.
func SumAmount(acc decimal.Decimal, s entities.Sale) decimal.Decimal {
	return acc.Add(amountOf(s))
}

func amountOf(s entities.Sale) decimal.Decimal {
	return decimal.NewFromFloat(s.EffectiveAmount())
}

func keyFor(p Period) KeyFunc {
	if p == PeriodMonthly {
		return MonthKey
	}
	return DayKey
}
