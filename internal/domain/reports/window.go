package reports

import (
	"errors"
	"strings"
	"time"

	"rutvans_api/internal/domain/entities"
)

// DateLayout is the calendar-date format accepted for every date parameter.
const DateLayout = "2006-01-02"

var (
	ErrMissingDate   = errors.New("date is required")
	ErrMissingRange  = errors.New("from and to are required")
	ErrMissingPeriod = errors.New("period is required")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidPeriod = errors.New("invalid period")
)

// Period selects the calendar granularity of the historical balance.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates a period tag.
func ParsePeriod(raw string) (Period, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingPeriod
	}
	switch p := Period(strings.ToLower(raw)); p {
	case PeriodDaily, PeriodMonthly:
		return p, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Window is a closed UTC interval over Sale.CreatedAt. The zero value is
// unbounded and matches every sale.
type Window struct {
	Start   time.Time
	End     time.Time
	Bounded bool
}

// Unbounded selects every sale.
func Unbounded() Window {
	return Window{}
}

// DayWindow covers one calendar day, [date 00:00:00.000, date 23:59:59.999].
func DayWindow(date string) (Window, error) {
	if strings.TrimSpace(date) == "" {
		return Window{}, ErrMissingDate
	}
	day, err := parseDay(date)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: day, End: endOfDay(day), Bounded: true}, nil
}

// RangeWindow covers [from 00:00:00.000, to 23:59:59.999]. Both ends are
// required. A from after to yields a window that matches nothing.
func RangeWindow(from, to string) (Window, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return Window{}, ErrMissingRange
	}
	start, err := parseDay(from)
	if err != nil {
		return Window{}, err
	}
	end, err := parseDay(to)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: endOfDay(end), Bounded: true}, nil
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w Window) Contains(t time.Time) bool {
	if !w.Bounded {
		return true
	}
	t = t.UTC()
	return !t.Before(w.Start) && !t.After(w.End)
}

// Filter returns the sales created inside the window, keeping their order.
func (w Window) Filter(sales []entities.Sale) []entities.Sale {
	if !w.Bounded {
		return sales
	}
	out := make([]entities.Sale, 0, len(sales))
	for _, s := range sales {
		if w.Contains(s.CreatedAt) {
			out = append(out, s)
		}
	}
	return out
}

func parseDay(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Millisecond)
}
