// Package timeparse turns the short human time forms punch accepts on the
// command line into absolute timestamps.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseError reports time text that matched none of the supported forms.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time format: %s", e.Input)
}

var (
	datetimeRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})\s+(\d{1,2}):(\d{2})$`)
	hasDateRe  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	hhmmRe     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	meridiemRe = regexp.MustCompile(`(?i)^(\d{1,2})\s*(am|pm)$`)
	hourOnlyRe = regexp.MustCompile(`^(\d{1,2})h$`)
)

// Parse converts time text into a timestamp. Clock-only forms ("14:30",
// "2pm", "14h") land on base's calendar day in base's location; the full
// "YYYY-MM-DD HH:MM" form ignores base entirely.
//
// Supported forms:
//
//	14:30              24-hour clock
//	2pm, 9 am, 12am    12-hour clock (12am = midnight, 12pm = noon)
//	14h                hour only
//	2026-01-18 14:30   full datetime
func Parse(text string, base time.Time) (time.Time, error) {
	// A date anywhere in the text means the full-datetime form is intended,
	// so a malformed one fails rather than falling through.
	if hasDateRe.MatchString(text) {
		m := datetimeRe.FindStringSubmatch(text)
		if m == nil {
			return time.Time{}, &ParseError{Input: text}
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		return time.Date(year, time.Month(month), day, hour, minute, 0, 0, base.Location()), nil
	}

	if m := hhmmRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return atClock(base, hour, minute), nil
	}

	if m := meridiemRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		isPM := strings.EqualFold(m[2], "pm")
		if isPM && hour != 12 {
			hour += 12
		} else if !isPM && hour == 12 {
			hour = 0
		}
		return atClock(base, hour, 0), nil
	}

	if m := hourOnlyRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return atClock(base, hour, 0), nil
	}

	return time.Time{}, &ParseError{Input: text}
}

// atClock keeps base's calendar day and replaces the clock time.
func atClock(base time.Time, hour, minute int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}
