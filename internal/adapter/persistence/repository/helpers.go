package repository

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"rutvans_api/internal/domain/entities"
)

// storeTimeLayout is fixed-width UTC so string comparison matches time order.
const storeTimeLayout = "2006-01-02T15:04:05.000Z"

func formatStoreTime(t time.Time) string {
	return t.UTC().Format(storeTimeLayout)
}

// ErrInvalidStoredTime marks a stored timestamp outside storeTimeLayout. Such a
// row would not compare correctly under BETWEEN, so reads reject it.
var ErrInvalidStoredTime = errors.New("stored timestamp is not in the store layout")

func parseStoreTime(raw string) (time.Time, error) {
	t, err := time.Parse(storeTimeLayout, raw)
	if err != nil || len(raw) != len(storeTimeLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStoredTime, raw)
	}
	return t.UTC(), nil
}

// sortByCreation orders sales by createdAt, then id.
func sortByCreation(sales []entities.Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		if !sales[i].CreatedAt.Equal(sales[j].CreatedAt) {
			return sales[i].CreatedAt.Before(sales[j].CreatedAt)
		}
		return sales[i].ID < sales[j].ID
	})
}
