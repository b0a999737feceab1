package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmaLevelConstantSeries(t *testing.T) {
	totals := make([]float64, 20)
	for i := range totals {
		totals[i] = 120
	}

	assert.InDelta(t, 120, emaLevel(totals, emaSpan), 1e-9)
}

func TestEmaLevelWeightsRecentDays(t *testing.T) {
	// A jump at the end should pull the level well above the old mean but
	// not all the way to the new value.
	totals := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 100}

	level := emaLevel(totals, emaSpan)

	assert.Greater(t, level, 10.0)
	assert.Less(t, level, 100.0)
	// alpha = 0.25, single step from 10: 0.25*100 + 0.75*10
	assert.InDelta(t, 32.5, level, 1e-9)
}

func TestProjectFlatThirtyConsecutiveDays(t *testing.T) {
	lastDay := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)

	points := projectFlat(lastDay, 85.5, HorizonDays)

	require.Len(t, points, 30)
	assert.Equal(t, "2024-02-28", points[0].Date)
	assert.Equal(t, "2024-02-29", points[1].Date) // leap day
	assert.Equal(t, "2024-03-28", points[29].Date)

	prev := lastDay
	for _, p := range points {
		day, err := time.Parse("2006-01-02", p.Date)
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1), day)
		assert.Equal(t, 85.5, p.PredictedSales)
		prev = day
	}
}
