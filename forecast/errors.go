package forecast

import (
	"errors"
	"fmt"
)

// ErrNoData means the sales history is empty, so there is nothing to
// project from.
var ErrNoData = errors.New("no sales data available for forecasting")

// ErrInsufficientHistory means the history spans fewer than
// MinHistoryDays daily buckets.
var ErrInsufficientHistory = errors.New("insufficient sales history for a reliable forecast")

// DateParseError reports a stored sale date that matched none of the
// accepted formats.
type DateParseError struct {
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse sale date %q", e.Value)
}
