package utils

// MaxListLimit bounds how many rows any list endpoint returns in one call.
const MaxListLimit = 1000

// ClampRange normalizes skip/limit query values to something sane.
func ClampRange(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return skip, limit
}
