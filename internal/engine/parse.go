package engine

import (
	"math"
	"strconv"
)

// SafeFloat coerces an arbitrary decoded value to a finite float64. Anything
// non-numeric or non-finite becomes 0; formulas downstream never see NaN or
// Inf. Every formula boundary goes through this single helper so the failure
// behaviour stays identical everywhere.
func SafeFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	case nil:
		return 0
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// safeDiv short-circuits division by a non-positive denominator to 0.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return finite(num / den)
}
