package common

import "math"

// Epsilon is the tolerance used for every grid alignment and direction test.
const Epsilon = 1e-3

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// ApproxEqual reports whether a and b are within Epsilon of each other.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Sign returns -1, 0 or 1, treating values within Epsilon of zero as zero.
func Sign(v float64) int {
	switch {
	case math.Abs(v) <= Epsilon:
		return 0
	case v > 0:
		return 1
	default:
		return -1
	}
}
