package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/punch-cli/punch/internal/punch"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List time entries",
	Long: `List time entries for a window. The default window is today; --week
starts on Monday and --month on the first of the month. Filters are
mutually exclusive.

Examples:
  punch log
  punch log --week
  punch log --month -p backend`,
	Args: cobra.NoArgs,
	RunE: withService(func(cmd *cobra.Command, args []string, svc *punch.Service) error {
		opts := punch.LogOptions{}
		opts.Today, _ = cmd.Flags().GetBool("today")
		opts.Week, _ = cmd.Flags().GetBool("week")
		opts.Month, _ = cmd.Flags().GetBool("month")
		opts.Project = projectFlag(cmd)

		entries, err := svc.Log(opts)
		if err != nil {
			return err
		}

		fmt.Println(renderLogTable(entries))
		return nil
	}),
}

var logHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

// renderLogTable lays the entries out in a width-fitted table. Ids are cut
// to 8 characters, which is plenty to reference an entry in 'punch edit'.
func renderLogTable(entries []punch.LogEntry) string {
	if len(entries) == 0 {
		return "No entries found"
	}

	const idWidth = 8
	taskWidth := len("Task")
	projectWidth := len("Project")
	startWidth := len("Start")
	endWidth := len("End")
	durationWidth := len("Duration")

	for _, e := range entries {
		taskWidth = max(taskWidth, len(e.TaskName))
		if e.Project != nil {
			projectWidth = max(projectWidth, len(*e.Project))
		}
		startWidth = max(startWidth, len(e.FormattedStart))
		endWidth = max(endWidth, len(e.FormattedEnd))
		durationWidth = max(durationWidth, len(e.FormattedDuration))
	}

	row := func(id, task, project, start, end, duration string) string {
		return strings.Join([]string{
			pad(id, idWidth),
			pad(task, taskWidth),
			pad(project, projectWidth),
			pad(start, startWidth),
			pad(end, endWidth),
			pad(duration, durationWidth),
		}, " | ")
	}

	header := row("ID", "Task", "Project", "Start", "End", "Duration")
	lines := []string{
		logHeaderStyle.Render(header),
		strings.Repeat("-", len(header)),
	}

	for _, e := range entries {
		project := ""
		if e.Project != nil {
			project = *e.Project
		}
		id := e.ID
		if len(id) > idWidth {
			id = id[:idWidth]
		}
		lines = append(lines, row(id, e.TaskName, project, e.FormattedStart, e.FormattedEnd, e.FormattedDuration))
	}

	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func init() {
	logCmd.Flags().Bool("today", false, "Today's entries (default)")
	logCmd.Flags().Bool("week", false, "This week's entries, from Monday")
	logCmd.Flags().Bool("month", false, "This month's entries")
	logCmd.Flags().StringP("project", "p", "", "Filter by project")
}
