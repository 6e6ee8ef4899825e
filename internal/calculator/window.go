// Package calculator holds the pure computations behind ledger analytics:
// date windows and bucketed totals. Nothing here touches storage.
package calculator

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Window is an inclusive range of calendar dates.
type Window struct {
	From civil.Date
	To   civil.Date
}

// MonthWindow covers one calendar month.
func MonthWindow(year int, month time.Month) Window {
	return Window{
		From: dateOf(year, month, 1),
		To:   dateOf(year, month+1, 0),
	}
}

// YearWindow covers January 1 through December 31.
func YearWindow(year int) Window {
	return Window{
		From: civil.Date{Year: year, Month: time.January, Day: 1},
		To:   civil.Date{Year: year, Month: time.December, Day: 31},
	}
}

// ParseMonth parses a "YYYY-MM" token into its month window.
func ParseMonth(token string) (Window, error) {
	t, err := time.Parse("2006-01", token)
	if err != nil {
		return Window{}, fmt.Errorf("invalid month %q: want YYYY-MM", token)
	}
	return MonthWindow(t.Year(), t.Month()), nil
}

// ParseYear parses a four-digit "YYYY" token into its year window.
func ParseYear(token string) (Window, error) {
	if len(token) != 4 {
		return Window{}, fmt.Errorf("invalid year %q: want YYYY", token)
	}
	t, err := time.Parse("2006", token)
	if err != nil {
		return Window{}, fmt.Errorf("invalid year %q: want YYYY", token)
	}
	return YearWindow(t.Year()), nil
}

// Resolve picks the analytics window: the month token if given, else the
// year token, else the calendar month containing today.
func Resolve(month, year string, today civil.Date) (Window, error) {
	switch {
	case month != "":
		return ParseMonth(month)
	case year != "":
		return ParseYear(year)
	default:
		return MonthWindow(today.Year, today.Month), nil
	}
}

// Previous returns the calendar month before the window's first month,
// whatever the window's own length.
func (w Window) Previous() Window {
	prev := dateOf(w.From.Year, w.From.Month-1, 1)
	return MonthWindow(prev.Year, prev.Month)
}

// Intersect returns the overlap of two windows and whether there is one.
func (w Window) Intersect(other Window) (Window, bool) {
	out := w
	if other.From.After(out.From) {
		out.From = other.From
	}
	if other.To.Before(out.To) {
		out.To = other.To
	}
	return out, !out.From.After(out.To)
}

// dateOf normalizes out-of-range months and days the way time.Date does,
// so day 0 is the last day of the previous month.
func dateOf(year int, month time.Month, day int) civil.Date {
	return civil.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (w Window) String() string {
	return w.From.String() + ".." + w.To.String()
}
