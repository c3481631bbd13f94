package submat

import (
	"math"
)

// Round rounds x to the nearest integer. Halves are rounded away from zero,
// so that 2.5 becomes 3 and -2.5 becomes -3.
func Round(x float64) int {
	if x < 0 {
		return -int(math.Floor(-x + 0.5))
	}
	return int(math.Floor(x + 0.5))
}
