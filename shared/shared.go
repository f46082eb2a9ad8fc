package shared

import (
	"math"
	"strconv"
)

// Round2 rounds a monetary amount to 2 decimal places using standard
// half-away-from-zero rounding.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatPrice renders a monetary amount the way the backend expects it on the
// wire: a fixed-point string with exactly 2 decimals.
func FormatPrice(value float64) string {
	return strconv.FormatFloat(Round2(value), 'f', 2, 64)
}

// CalculateTotalPage returns the page count for a paginated listing.
func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}
