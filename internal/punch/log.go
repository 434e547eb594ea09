package punch

import (
	"time"

	"github.com/punch-cli/punch/internal/format"
)

// LogOptions selects the window and project filter for a log query.
// Today, Week and Month are mutually exclusive; none of them means today.
type LogOptions struct {
	Today   bool
	Week    bool
	Month   bool
	Project *string
}

// LogEntry is one display-ready row of the log.
type LogEntry struct {
	ID        string
	TaskName  string
	Project   *string
	StartTime time.Time
	EndTime   *time.Time

	// Duration is nil while the entry is active.
	Duration          *time.Duration
	FormattedStart    string
	FormattedEnd      string
	FormattedDuration string
}

// Log returns entries started inside the selected window, ascending by
// start time. There is no upper bound, so active and future-dated entries
// show up. The default window is today, from local midnight.
func (s *Service) Log(opts LogOptions) ([]LogEntry, error) {
	var selected []string
	if opts.Today {
		selected = append(selected, "--today")
	}
	if opts.Week {
		selected = append(selected, "--week")
	}
	if opts.Month {
		selected = append(selected, "--month")
	}
	if len(selected) > 1 {
		return nil, &LogOptionsError{Filters: selected}
	}

	now := s.now()
	var windowStart time.Time
	switch {
	case opts.Week:
		windowStart = startOfWeek(now)
	case opts.Month:
		windowStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		windowStart = startOfDay(now)
	}

	entries, err := s.store.FindStartedSince(windowStart, opts.Project)
	if err != nil {
		return nil, err
	}

	results := make([]LogEntry, 0, len(entries))
	for _, entry := range entries {
		row := LogEntry{
			ID:                entry.ID,
			TaskName:          entry.TaskName,
			Project:           entry.Project,
			StartTime:         entry.StartTime,
			EndTime:           entry.EndTime,
			Duration:          entry.Duration(),
			FormattedStart:    format.Time(entry.StartTime),
			FormattedDuration: format.Duration(entry.StartTime, entry.EndTime),
		}
		if entry.EndTime != nil {
			row.FormattedEnd = format.Time(*entry.EndTime)
		}
		results = append(results, row)
	}
	return results, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns local Monday 00:00 of t's week. Sunday counts as
// the end of the week, six days after Monday.
func startOfWeek(t time.Time) time.Time {
	midnight := startOfDay(t)
	daysToMonday := int(midnight.Weekday()) - 1
	if midnight.Weekday() == time.Sunday {
		daysToMonday = 6
	}
	return midnight.AddDate(0, 0, -daysToMonday)
}
