package calculator

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertBuckets(t *testing.T, name string, got []Bucket, want []Bucket) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d buckets, want %d (%v)", name, len(got), len(want), got)
	}
	for i := range want {
		if got[i].Key != want[i].Key || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("%s[%d] = %s:%s, want %s:%s", name, i, got[i].Key, got[i].Total, want[i].Key, want[i].Total)
		}
	}
}

func TestAggregate(t *testing.T) {
	entries := []Entry{
		{Date: date(2024, 1, 20), Category: "transport", Amount: dec("7")},
		{Date: date(2024, 1, 5), Category: "food", Amount: dec("10")},
		{Date: date(2024, 1, 5), Category: "food", Amount: dec("5")},
	}

	got := Aggregate(entries)

	assertBuckets(t, "ByCategory", got.ByCategory, []Bucket{
		{Key: "transport", Total: dec("7")},
		{Key: "food", Total: dec("15")},
	})
	assertBuckets(t, "ByDay", got.ByDay, []Bucket{
		{Key: "2024-01-05", Total: dec("15")},
		{Key: "2024-01-20", Total: dec("7")},
	})
	assertBuckets(t, "ByMonth", got.ByMonth, []Bucket{
		{Key: "2024-01", Total: dec("22")},
	})
}

func TestAggregateExactDecimal(t *testing.T) {
	var entries []Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, Entry{Date: date(2024, 2, 1), Category: "misc", Amount: dec("0.10")})
	}

	got := Aggregate(entries)
	if !got.ByCategory[0].Total.Equal(dec("1")) {
		t.Errorf("ten dimes = %s, want exactly 1", got.ByCategory[0].Total)
	}
}

func TestAggregateMonthsKeepFirstEncounterOrder(t *testing.T) {
	got := Aggregate([]Entry{
		{Date: date(2024, 3, 1), Category: "a", Amount: dec("1")},
		{Date: date(2024, 1, 1), Category: "a", Amount: dec("2")},
		{Date: date(2024, 3, 9), Category: "b", Amount: dec("-0.5")},
	})

	assertBuckets(t, "ByMonth", got.ByMonth, []Bucket{
		{Key: "2024-03", Total: dec("0.5")},
		{Key: "2024-01", Total: dec("2")},
	})
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if len(got.ByCategory) != 0 || len(got.ByDay) != 0 || len(got.ByMonth) != 0 {
		t.Errorf("expected empty totals, got %+v", got)
	}
}

func TestMonthKey(t *testing.T) {
	tests := []struct {
		date civil.Date
		want string
	}{
		{date(2024, 1, 5), "2024-01"},
		{date(999, 12, 31), "0999-12"},
		{date(10000, 2, 1), "10000-02"},
	}
	for _, tt := range tests {
		if got := monthKey(tt.date); got != tt.want {
			t.Errorf("monthKey(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
