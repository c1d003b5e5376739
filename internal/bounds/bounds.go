// Package bounds provides overflow-safe arithmetic and range clamping for
// the container and view packages.
package bounds

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. Growth code uses it to guard capacity doubling.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// ClampRange normalizes a half-open [start, end) request against a window of
// the given size. Out-of-range requests degrade rather than fail: start > end
// collapses to end, negative indices clamp to zero, and both ends clamp to
// size. The result always satisfies 0 <= start <= end <= size.
func ClampRange(start, end, size int) (int, int) {
	if end < 0 {
		end = 0
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}
	if end > size {
		end = size
	}
	if start > size {
		start = size
	}
	return start, end
}
