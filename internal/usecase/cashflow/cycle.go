package cashflow

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// AssignCycle buckets a payment timestamp into a 1-based repayment cycle
// counted from the facility start. Without a usable calendar anchor (zero
// date on either side, or a non-positive cadence) it degrades to the
// positional fallback: event i lands in cycle i+1. Anything dated before
// the facility start collapses into cycle 1.
func AssignCycle(actual, base time.Time, cadenceDays, fallbackIndex int) int {
	if actual.IsZero() || base.IsZero() || cadenceDays <= 0 {
		return fallbackIndex + 1
	}
	if actual.Before(base) {
		return 1
	}
	n := int(math.Floor(float64(actual.Sub(base))/float64(time.Duration(cadenceDays)*day))) + 1
	if n < 1 {
		return 1
	}
	return n
}

// DueDate computes the due date of a cycle as base + cadence * cycle.
// Due dates follow the assigned cycle number, so a chronically late payer's
// schedule drifts forward with their lateness. Internally consistent and
// kept as-is; changing it would shift delinquency outputs.
func DueDate(base time.Time, cadenceDays, cycle int) time.Time {
	if base.IsZero() || cadenceDays <= 0 || cycle < 1 {
		return base
	}
	return base.Add(time.Duration(cadenceDays*cycle) * day)
}
