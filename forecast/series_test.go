package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSaleDateFormats(t *testing.T) {
	cases := []struct {
		value string
		day   string
	}{
		{"2024-03-10", "2024-03-10"},
		{"2024-03-10T15:04:05", "2024-03-10"},
		{"2024-03-10T15:04:05.123456", "2024-03-10"},
		{"2024-03-10T15:04:05Z", "2024-03-10"},
		{"2024-03-10T23:30:00-03:00", "2024-03-11"}, // UTC day, not local
	}

	for _, tc := range cases {
		parsed, err := ParseSaleDate(tc.value)
		require.NoError(t, err, "value %q", tc.value)
		assert.Equal(t, tc.day, dayOf(parsed).Format("2006-01-02"), "value %q", tc.value)
	}
}

func TestParseSaleDateRejectsGarbage(t *testing.T) {
	_, err := ParseSaleDate("not-a-date")

	var parseErr *DateParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Error(), "not-a-date")
}

func TestBuildDailySeriesSumsSameDay(t *testing.T) {
	sales := []Sale{
		{Date: "2024-03-10T09:00:00", Total: 40},
		{Date: "2024-03-10T13:30:00", Total: 25},
		{Date: "2024-03-10", Total: 35},
	}

	series, err := buildDailySeries(sales)
	require.NoError(t, err)

	assert.Equal(t, 1, series.Len())
	assert.Equal(t, 100.0, series.Totals[0])
}

func TestBuildDailySeriesFillsGapsWithZero(t *testing.T) {
	sales := []Sale{
		{Date: "2024-03-01", Total: 50},
		{Date: "2024-03-05", Total: 80},
	}

	series, err := buildDailySeries(sales)
	require.NoError(t, err)

	require.Equal(t, 5, series.Len())
	assert.Equal(t, []float64{50, 0, 0, 0, 80}, series.Totals)
	assert.Equal(t, "2024-03-01", series.Start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-05", series.LastDay().Format("2006-01-02"))
}

func TestBuildDailySeriesSpansFullRange(t *testing.T) {
	// Unordered input covering 31 days, only three of which had sales.
	sales := []Sale{
		{Date: "2024-01-31", Total: 10},
		{Date: "2024-01-01", Total: 20},
		{Date: "2024-01-15", Total: 30},
	}

	series, err := buildDailySeries(sales)
	require.NoError(t, err)

	assert.Equal(t, 31, series.Len())
	assert.Equal(t, 20.0, series.Totals[0])
	assert.Equal(t, 30.0, series.Totals[14])
	assert.Equal(t, 10.0, series.Totals[30])
}

func TestBuildDailySeriesBadDateAborts(t *testing.T) {
	sales := []Sale{
		{Date: "2024-03-01", Total: 50},
		{Date: "yesterday-ish", Total: 10},
	}

	_, err := buildDailySeries(sales)

	var parseErr *DateParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "yesterday-ish", parseErr.Value)
}

func TestDayOfNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	stamp := time.Date(2024, 6, 1, 22, 15, 0, 0, loc)

	day := dayOf(stamp)

	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), day)
}
