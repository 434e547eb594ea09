// Package format renders entry timestamps and durations for display.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Time formats a timestamp as a short clock time, e.g. "2:30pm".
func Time(t time.Time) string {
	return strings.ToLower(t.Format("3:04pm"))
}

// Duration renders the span between start and end as "2h 30m", "45m" or
// "2h". A nil end means the entry is still running and renders "(active)".
func Duration(start time.Time, end *time.Time) string {
	if end == nil {
		return "(active)"
	}

	totalMinutes := int(end.Sub(start).Minutes())
	if totalMinutes < 1 {
		return "0m"
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Date renders a day as "Today", "Yesterday" or "Jan 18", relative to now.
func Date(t time.Time, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	switch {
	case target.Equal(today):
		return "Today"
	case target.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("Jan 2")
	}
}
