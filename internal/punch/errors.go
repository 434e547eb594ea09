package punch

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// The error kinds below are the closed set of expected, user-recoverable
// outcomes. Callers match them with errors.As / errors.Is; anything else
// coming out of a Service method is a storage failure.

// ErrNoActiveTask means punch-out found nothing running.
var ErrNoActiveTask = errors.New("no active task to stop")

// ErrNoEntries means an implicit edit target was requested on an empty store.
var ErrNoEntries = errors.New("no entries to edit")

// TaskAlreadyRunningError means punch-in found an entry still running.
// It carries the existing entry's name and start time, not the new one's.
type TaskAlreadyRunningError struct {
	TaskName  string
	StartTime time.Time
}

func (e *TaskAlreadyRunningError) Error() string {
	return fmt.Sprintf("task already running: %q", e.TaskName)
}

// InvalidEndTimeError means a computed end time was not strictly after the
// start time it was paired with.
type InvalidEndTimeError struct {
	StartTime time.Time
	EndTime   time.Time
}

func (e *InvalidEndTimeError) Error() string {
	return "end time must be after start time"
}

// EntryNotFoundError means a position or prefix reference matched nothing.
type EntryNotFoundError struct {
	Identifier string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("no entry found for %q", e.Identifier)
}

// AmbiguousIDPrefixError means an id prefix matched more than one entry.
// Matches holds every matching id so the user can be shown enough of each
// to pick one.
type AmbiguousIDPrefixError struct {
	Prefix  string
	Matches []string
}

func (e *AmbiguousIDPrefixError) Error() string {
	return fmt.Sprintf("ambiguous id prefix %q matches %d entries", e.Prefix, len(e.Matches))
}

// LogOptionsError means more than one mutually exclusive time filter was
// requested.
type LogOptionsError struct {
	Filters []string
}

func (e *LogOptionsError) Error() string {
	return fmt.Sprintf("log filters are mutually exclusive: %s", strings.Join(e.Filters, ", "))
}
