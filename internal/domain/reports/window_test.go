package reports

import (
	"errors"
	"testing"
	"time"

	"rutvans_api/internal/domain/entities"
)

func TestDayWindow(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		_, err := DayWindow("  ")
		if !errors.Is(err, ErrMissingDate) {
			t.Fatalf("expected ErrMissingDate, got %v", err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := DayWindow("2024-13-01")
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("bounds are inclusive to the millisecond", func(t *testing.T) {
		w, err := DayWindow("2024-01-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checks := []struct {
			at   time.Time
			want bool
		}{
			{time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, time.UTC), false},
			{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
			{time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), true},
			{time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC), true},
			{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), false},
		}
		for _, c := range checks {
			if got := w.Contains(c.at); got != c.want {
				t.Fatalf("Contains(%s) = %v, want %v", c.at, got, c.want)
			}
		}
	})

	t.Run("non-utc timestamps are compared in utc", func(t *testing.T) {
		w, _ := DayWindow("2024-01-02")
		cst := time.FixedZone("CST", -6*60*60)
		// 2024-01-01 20:00 CST is 2024-01-02 02:00 UTC.
		if !w.Contains(time.Date(2024, 1, 1, 20, 0, 0, 0, cst)) {
			t.Fatalf("expected timestamp to fall in the utc day")
		}
	})
}

func TestRangeWindow(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		err      error
	}{
		{name: "missing from", from: "", to: "2024-01-02", err: ErrMissingRange},
		{name: "missing to", from: "2024-01-01", to: "", err: ErrMissingRange},
		{name: "invalid from", from: "01/01/2024", to: "2024-01-02", err: ErrInvalidDate},
		{name: "invalid to", from: "2024-01-01", to: "tomorrow", err: ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RangeWindow(tc.from, tc.to)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}

	t.Run("valid range", func(t *testing.T) {
		w, err := RangeWindow("2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.Bounded {
			t.Fatalf("expected bounded window")
		}
		if !w.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected start: %s", w.Start)
		}
		if !w.End.Equal(time.Date(2024, 1, 31, 23, 59, 59, 999_000_000, time.UTC)) {
			t.Fatalf("unexpected end: %s", w.End)
		}
	})

	t.Run("reversed range matches nothing", func(t *testing.T) {
		w, err := RangeWindow("2024-02-01", "2024-01-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sales := []entities.Sale{{ID: "1", CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}}
		if got := w.Filter(sales); len(got) != 0 {
			t.Fatalf("expected empty result, got %d", len(got))
		}
	})
}

func TestWindowFilter(t *testing.T) {
	sales := []entities.Sale{
		{ID: "a", CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "b", CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
		{ID: "c", CreatedAt: time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)},
	}

	t.Run("unbounded keeps everything", func(t *testing.T) {
		if got := Unbounded().Filter(sales); len(got) != 3 {
			t.Fatalf("expected 3 sales, got %d", len(got))
		}
	})

	t.Run("day keeps order", func(t *testing.T) {
		w, _ := DayWindow("2024-01-01")
		got := w.Filter(sales)
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
			t.Fatalf("unexpected filtered sales: %+v", got)
		}
	})
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		raw  string
		want Period
		err  error
	}{
		{raw: "daily", want: PeriodDaily},
		{raw: " Monthly ", want: PeriodMonthly},
		{raw: "", err: ErrMissingPeriod},
		{raw: "weekly", err: ErrInvalidPeriod},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParsePeriod(tc.raw)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
