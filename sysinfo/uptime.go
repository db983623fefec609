package sysinfo

import (
	"fmt"
	"strings"
)

// Interrupt time is reported in 100ns ticks.
const (
	ticksPerMillisecond = 10000
	millisPerSecond     = 1000
)

// Uptime returns the time since boot as text, e.g.
// "3 days, 4 hours, 12 minutes". A failed timer query is returned as a
// *QueryError; callers that want the legacy text can show InvalidUptime.
func (f *Fetcher) Uptime() (string, error) {
	ticks, err := f.host.InterruptTime()
	if err != nil {
		return "", &QueryError{Op: "uptime", Err: err}
	}
	return FormatUptime(ticks), nil
}

// FormatUptime converts interrupt-time ticks into a human-readable
// duration.
//
// Parameters:
//   - ticks: Elapsed time in 100-nanosecond units
//
// Returns:
//   - Days, hours and minutes joined by ", " with zero units left out
//     and singular names for a value of 1 (e.g., "2 days, 5 minutes")
//   - "less than a minute" when all three units are zero
func FormatUptime(ticks uint64) string {
	seconds := ticks / ticksPerMillisecond / millisPerSecond

	days := seconds / 86400
	hours := (seconds / 3600) % 24
	minutes := (seconds / 60) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, pluralize(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	if len(parts) == 0 {
		return "less than a minute"
	}

	return strings.Join(parts, ", ")
}

// pluralize formats count with unit, adding "s" unless count is 1.
func pluralize(count uint64, unit string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, unit)
	}
	return fmt.Sprintf("%d %ss", count, unit)
}
