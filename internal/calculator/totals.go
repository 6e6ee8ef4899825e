package calculator

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Entry is the slice of an expense that analytics needs.
type Entry struct {
	Date     civil.Date
	Category string
	Amount   decimal.Decimal
}

// Bucket is one keyed total.
type Bucket struct {
	Key   string
	Total decimal.Decimal
}

// Totals groups the same entries three ways.
type Totals struct {
	// ByCategory is ordered by first appearance in the input.
	ByCategory []Bucket
	// ByDay is keyed by ISO date and ordered ascending.
	ByDay []Bucket
	// ByMonth is keyed by "YYYY-MM" and ordered by first appearance.
	ByMonth []Bucket
}

// Aggregate sums entries by category, day and month using exact decimal
// addition.
func Aggregate(entries []Entry) Totals {
	var byCategory, byDay, byMonth accumulator
	for _, e := range entries {
		byCategory.add(e.Category, e.Amount)
		byDay.add(e.Date.String(), e.Amount)
		byMonth.add(monthKey(e.Date), e.Amount)
	}

	days := byDay.buckets()
	sort.SliceStable(days, func(i, j int) bool { return days[i].Key < days[j].Key })

	return Totals{
		ByCategory: byCategory.buckets(),
		ByDay:      days,
		ByMonth:    byMonth.buckets(),
	}
}

func monthKey(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// accumulator keeps insertion order of keys.
type accumulator struct {
	keys   []string
	totals map[string]decimal.Decimal
}

func (a *accumulator) add(key string, amount decimal.Decimal) {
	if a.totals == nil {
		a.totals = make(map[string]decimal.Decimal)
	}
	cur, ok := a.totals[key]
	if !ok {
		a.keys = append(a.keys, key)
		cur = decimal.Zero
	}
	a.totals[key] = cur.Add(amount)
}

func (a *accumulator) buckets() []Bucket {
	out := make([]Bucket, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, Bucket{Key: k, Total: a.totals[k]})
	}
	return out
}
