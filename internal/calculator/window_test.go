package calculator

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  Window
	}{
		{"january", 2024, time.January, Window{date(2024, 1, 1), date(2024, 1, 31)}},
		{"leap february", 2024, time.February, Window{date(2024, 2, 1), date(2024, 2, 29)}},
		{"plain february", 2023, time.February, Window{date(2023, 2, 1), date(2023, 2, 28)}},
		{"december", 2023, time.December, Window{date(2023, 12, 1), date(2023, 12, 31)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthWindow(tt.year, tt.month); got != tt.want {
				t.Errorf("MonthWindow(%d, %s) = %s, want %s", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	today := date(2024, 3, 15)

	tests := []struct {
		name    string
		month   string
		year    string
		want    Window
		wantErr bool
	}{
		{"month wins over year", "2024-01", "2023", Window{date(2024, 1, 1), date(2024, 1, 31)}, false},
		{"year only", "", "2023", Window{date(2023, 1, 1), date(2023, 12, 31)}, false},
		{"defaults to current month", "", "", Window{date(2024, 3, 1), date(2024, 3, 31)}, false},
		{"bad month", "2024-13", "", Window{}, true},
		{"bad month format", "January", "", Window{}, true},
		{"short year", "", "24", Window{}, true},
		{"non-numeric year", "", "abcd", Window{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.month, tt.year, today)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Resolve() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrevious(t *testing.T) {
	tests := []struct {
		name string
		in   Window
		want Window
	}{
		{"month", MonthWindow(2024, time.March), MonthWindow(2024, time.February)},
		{"crosses year", MonthWindow(2024, time.January), MonthWindow(2023, time.December)},
		{"year window uses start month", YearWindow(2024), MonthWindow(2023, time.December)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Previous(); got != tt.want {
				t.Errorf("Previous() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	w := MonthWindow(2024, time.January)
	if w.From != date(2024, 1, 1) || w.To != date(2024, 1, 31) {
		t.Errorf("MonthWindow = %s", w)
	}

	got, ok := YearWindow(2024).Intersect(w)
	if !ok || got != w {
		t.Errorf("Intersect = %s, %v; want %s, true", got, ok, w)
	}

	if _, ok := w.Intersect(MonthWindow(2024, time.March)); ok {
		t.Error("disjoint windows should not intersect")
	}
}
