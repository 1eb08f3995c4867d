package calorie

import (
	"math"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// BodyWeightKg is the fixed body weight used by every estimate.
const BodyWeightKg = 70

// MaxMinutes is the longest duration a single workout may record. With
// factors capped at MaxFactor the integer product below stays far inside
// int64, and so do the log totals.
const MaxMinutes = 100_000

// Estimate returns floor(met * minutes * 3.5 * BodyWeightKg / 200).
//
// The MET factor is quantized to hundredths and the product is evaluated in
// integer arithmetic, so truncation matches the exact decimal result rather
// than a float64 approximation of it. Negative minutes estimate 0 and
// durations above MaxMinutes are estimated at MaxMinutes; callers validate
// the range first.
func Estimate(t Table, kind domain.ExerciseKind, minutes int) int {
	if minutes <= 0 {
		return 0
	}
	minutes = min(minutes, MaxMinutes)
	centiMET := int64(math.Round(min(t.Factor(kind), MaxFactor) * 100))
	// 3.5 = 35/10, MET = centiMET/100.
	num := centiMET * int64(minutes) * 35 * BodyWeightKg
	den := int64(100 * 10 * 200)
	return int(num / den)
}
