package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/punch-cli/punch/internal/db"
	"github.com/punch-cli/punch/internal/format"
	"github.com/punch-cli/punch/internal/punch"
	"github.com/punch-cli/punch/internal/timeparse"
)

// Exit code classes: user-level outcomes the person can fix themselves
// versus storage or internal breakage.
const (
	ExitUserError  = 1
	ExitStoreError = 2
)

// usageError marks bad command-line input so it exits as a user error
// rather than an internal one.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(msg string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(msg, args...)}
}

// Describe maps an error to its user-facing message and exit code.
// Every expected error kind gets one specific message; anything
// unrecognized is reported as an internal failure so bugs do not
// masquerade as user mistakes.
func Describe(err error) (string, int) {
	var alreadyRunning *punch.TaskAlreadyRunningError
	if errors.As(err, &alreadyRunning) {
		return fmt.Sprintf("Task already running: %q started at %s",
			alreadyRunning.TaskName, format.Time(alreadyRunning.StartTime)), ExitUserError
	}

	if errors.Is(err, punch.ErrNoActiveTask) {
		return "No active task to stop", ExitUserError
	}

	if errors.Is(err, punch.ErrNoEntries) {
		return "No entries to edit", ExitUserError
	}

	var invalidEnd *punch.InvalidEndTimeError
	if errors.As(err, &invalidEnd) {
		return fmt.Sprintf("End time must be after start time (%s)",
			format.Time(invalidEnd.StartTime)), ExitUserError
	}

	var notFound *punch.EntryNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("No entry found for %q", notFound.Identifier), ExitUserError
	}

	var ambiguous *punch.AmbiguousIDPrefixError
	if errors.As(err, &ambiguous) {
		lines := []string{fmt.Sprintf("Id prefix %q is ambiguous, matches:", ambiguous.Prefix)}
		for _, id := range ambiguous.Matches {
			if len(id) > 12 {
				id = id[:12]
			}
			lines = append(lines, "  "+id)
		}
		return strings.Join(lines, "\n"), ExitUserError
	}

	var logOpts *punch.LogOptionsError
	if errors.As(err, &logOpts) {
		return fmt.Sprintf("Pick one time filter, not %s", strings.Join(logOpts.Filters, " and ")), ExitUserError
	}

	var parseErr *timeparse.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Invalid time format: %q (use HH:MM, 2pm, 14h, or \"YYYY-MM-DD HH:MM\")",
			parseErr.Input), ExitUserError
	}

	var usage *usageError
	if errors.As(err, &usage) {
		return usage.msg, ExitUserError
	}

	var storeErr *db.StoreError
	if errors.As(err, &storeErr) {
		return fmt.Sprintf("Storage error: %v", storeErr), ExitStoreError
	}

	return fmt.Sprintf("Unexpected error: %v", err), ExitStoreError
}
