package cashflow

import "strings"

// DefaultCadenceDays is assumed when a deal's cadence label matches nothing.
const DefaultCadenceDays = 30

// CadenceDays maps a free-text repayment cadence label to a period in days.
// Substring matching on purpose: the label is human-entered ("Bi-weekly",
// "weekly payouts", "quarterly"), so this stays forgiving rather than
// parsing a calendar expression.
func CadenceDays(label string) int {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(l, "week"):
		if strings.Contains(l, "bi") {
			return 14
		}
		return 7
	case strings.Contains(l, "quarter"):
		return 90
	case strings.Contains(l, "day"):
		return 1
	default:
		return DefaultCadenceDays
	}
}
