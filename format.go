package calc

import (
	"math"
	"strconv"
)

// Format renders a result the way the calculator front ends display it:
// mathematically integral values with no fractional part, everything
// else in the shortest decimal form that round-trips.
func Format(x float64) string {
	if x == 0 {
		// Fold -0 into 0.
		return "0"
	}
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
