package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/punch-cli/punch/internal/db"
	"github.com/punch-cli/punch/internal/punch"
	"github.com/punch-cli/punch/internal/timeparse"
)

func TestDescribeExpectedErrorsExitAsUserErrors(t *testing.T) {
	start := time.Date(2026, 1, 21, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "task already running",
			err:      &punch.TaskAlreadyRunningError{TaskName: "Fix bug", StartTime: start},
			contains: `"Fix bug" started at 2:30pm`,
		},
		{
			name:     "no active task",
			err:      punch.ErrNoActiveTask,
			contains: "No active task",
		},
		{
			name:     "no entries",
			err:      punch.ErrNoEntries,
			contains: "No entries to edit",
		},
		{
			name:     "invalid end time",
			err:      &punch.InvalidEndTimeError{StartTime: start, EndTime: start.Add(-time.Hour)},
			contains: "after start time (2:30pm)",
		},
		{
			name:     "entry not found",
			err:      &punch.EntryNotFoundError{Identifier: "-9"},
			contains: `"-9"`,
		},
		{
			name:     "log filters",
			err:      &punch.LogOptionsError{Filters: []string{"--today", "--week"}},
			contains: "--today and --week",
		},
		{
			name:     "time parse",
			err:      &timeparse.ParseError{Input: "noonish"},
			contains: `"noonish"`,
		},
		{
			name:     "usage",
			err:      usageErrorf("Task name is required"),
			contains: "Task name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, code := Describe(tt.err)
			assert.Equal(t, ExitUserError, code)
			assert.Contains(t, msg, tt.contains)
		})
	}
}

func TestDescribeAmbiguousPrefixListsTruncatedIDs(t *testing.T) {
	err := &punch.AmbiguousIDPrefixError{
		Prefix: "abc",
		Matches: []string{
			"abc12345-0000-0000-0000-000000000001",
			"abc12345-0000-0000-0000-000000000002",
		},
	}

	msg, code := Describe(err)
	assert.Equal(t, ExitUserError, code)
	assert.Contains(t, msg, "abc12345-000")
	assert.Equal(t, 3, len(strings.Split(msg, "\n")))
	assert.NotContains(t, msg, "000000000001")
}

func TestDescribeStoreAndUnknownErrorsExitAsSystemErrors(t *testing.T) {
	msg, code := Describe(&db.StoreError{Op: "insert", Err: errors.New("disk I/O error")})
	assert.Equal(t, ExitStoreError, code)
	assert.Contains(t, msg, "Storage error")

	msg, code = Describe(errors.New("boom"))
	assert.Equal(t, ExitStoreError, code)
	assert.Contains(t, msg, "Unexpected error")
}
