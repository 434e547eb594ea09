package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/punch-cli/punch/internal/punch"
)

func TestRenderLogTableEmpty(t *testing.T) {
	assert.Equal(t, "No entries found", renderLogTable(nil))
}

func TestRenderLogTableRows(t *testing.T) {
	start := time.Date(2026, 1, 21, 9, 30, 0, 0, time.Local)
	end := start.Add(2 * time.Hour)
	project := "backend"

	entries := []punch.LogEntry{
		{
			ID:                "abc12345-0000-0000-0000-000000000001",
			TaskName:          "Fix login bug",
			Project:           &project,
			StartTime:         start,
			EndTime:           &end,
			FormattedStart:    "9:30am",
			FormattedEnd:      "11:30am",
			FormattedDuration: "2h",
		},
		{
			ID:                "def67890-0000-0000-0000-000000000002",
			TaskName:          "Standup",
			StartTime:         end,
			FormattedStart:    "11:30am",
			FormattedDuration: "(active)",
		},
	}

	out := renderLogTable(entries)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4) // header, separator, two rows

	assert.Contains(t, lines[0], "Duration")
	assert.Contains(t, out, "abc12345 |")
	assert.NotContains(t, out, "abc12345-0000")
	assert.Contains(t, out, "Fix login bug")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "(active)")
}
