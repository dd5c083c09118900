package engine

import (
	"fmt"
	"math"
)

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatStats renders Stats as a one-line summary.
func FormatStats(s Stats) string {
	if s.Launches == 0 {
		return "No launches."
	}
	return fmt.Sprintf("%s launches, %s successful (%.1f%%), payload %s–%s kg",
		FormatInt(s.Launches), FormatInt(s.Successes), s.SuccessRate,
		fmtNum(s.MinPayload), fmtNum(s.MaxPayload))
}

// fmtNum prints whole numbers without decimals, fractions with two.
func fmtNum(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
