// Package format renders counters and timestamps the way short-video
// UIs display them.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Count shortens large counters with the "w" (万, ten thousand) unit:
// 1234567 → "123.5w", 120000 → "12w".
func Count(n int) string {
	if n < 10000 {
		return strconv.Itoa(n)
	}

	wan := float64(n) / 10000

	formatted := fmt.Sprintf("%.1f", wan)
	if formatted[len(formatted)-2:] == ".0" {
		return fmt.Sprintf("%dw", int(math.Floor(wan)))
	}
	return formatted + "w"
}

// RelativeTime renders a millisecond timestamp relative to now, e.g.
// "5 minutes ago". Future timestamps render as "just now".
func RelativeTime(tsMillis int64) string {
	diff := time.Since(time.UnixMilli(tsMillis))
	if diff < 0 {
		return "just now"
	}

	const (
		minute = time.Minute
		hour   = time.Hour
		day    = 24 * hour
		month  = 30 * day
		year   = 365 * day
	)

	switch {
	case diff < minute:
		return "just now"
	case diff < hour:
		return plural(int(diff/minute), "minute")
	case diff < day:
		return plural(int(diff/hour), "hour")
	case diff < month:
		return plural(int(diff/day), "day")
	case diff < year:
		return plural(int(diff/month), "month")
	default:
		return plural(int(diff/year), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
