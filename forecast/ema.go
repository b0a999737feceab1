package forecast

import "time"

// emaLevel computes an exponentially weighted moving average over the
// daily totals and returns its final value. With span n the decay factor
// is the usual alpha = 2/(n+1); seven days keeps the level responsive to
// recent weeks without chasing single busy days.
func emaLevel(totals []float64, span int) float64 {
	alpha := 2.0 / (float64(span) + 1.0)
	level := totals[0]
	for _, v := range totals[1:] {
		level = alpha*v + (1-alpha)*level
	}
	return level
}

// projectFlat emits one point per future day, every one at the last
// smoothed level. Deliberately no trend or seasonality: with a series
// this short and sparse a flat line degrades more gracefully than a
// fitted model.
func projectFlat(lastDay time.Time, level float64, days int) []Point {
	points := make([]Point, 0, days)
	for i := 1; i <= days; i++ {
		points = append(points, Point{
			Date:           lastDay.AddDate(0, 0, i).Format("2006-01-02"),
			PredictedSales: level,
		})
	}
	return points
}
