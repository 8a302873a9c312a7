// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import "math"

// Growth returns the period-over-period ratio b/a with explicit zero
// handling: growth from nothing is +Inf, and no activity in either period
// is 0 rather than undefined, which keeps downstream comparisons total.
// The result is never negative and never an error for non-negative input.
func Growth(a, b int) float64 {
	if a == 0 {
		if b > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(b) / float64(a)
}
