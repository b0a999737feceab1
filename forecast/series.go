package forecast

import "time"

// The formats historical rows are known to carry, most specific first.
var saleDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DailySeries is a contiguous run of calendar days with one aggregate
// total per day. Days with no sales hold 0.
type DailySeries struct {
	Start  time.Time // first day, UTC midnight
	Totals []float64
}

// Len returns the number of days covered.
func (s DailySeries) Len() int {
	return len(s.Totals)
}

// LastDay returns the final day of the series.
func (s DailySeries) LastDay() time.Time {
	return s.Start.AddDate(0, 0, len(s.Totals)-1)
}

// ParseSaleDate parses a stored sale timestamp, trying each known format.
func ParseSaleDate(value string) (time.Time, error) {
	for _, format := range saleDateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &DateParseError{Value: value}
}

// dayOf normalizes a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// buildDailySeries buckets sales into calendar days, summing totals per
// day and zero-filling every day between the earliest and latest sale.
func buildDailySeries(sales []Sale) (DailySeries, error) {
	byDay := make(map[time.Time]float64, len(sales))
	var first, last time.Time

	for _, sale := range sales {
		t, err := ParseSaleDate(sale.Date)
		if err != nil {
			return DailySeries{}, err
		}
		day := dayOf(t)
		byDay[day] += sale.Total
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}

	days := int(last.Sub(first).Hours()/24) + 1
	totals := make([]float64, days)
	for day, total := range byDay {
		totals[int(day.Sub(first).Hours()/24)] = total
	}

	return DailySeries{Start: first, Totals: totals}, nil
}
