package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/punch-cli/punch/internal/format"
	"github.com/punch-cli/punch/internal/punch"
)

var inCmd = &cobra.Command{
	Use:     "in <task>",
	Aliases: []string{"start"},
	Short:   "Start tracking time on a task",
	Long: `Start tracking time on a task. Only one task can run at a time;
punch out first if something is already active.

Examples:
  punch in "Fix login bug"
  punch in "Review PR" -p backend`,
	Args: cobra.MinimumNArgs(1),
	RunE: withService(func(cmd *cobra.Command, args []string, svc *punch.Service) error {
		taskName := strings.TrimSpace(strings.Join(args, " "))
		if taskName == "" {
			return usageErrorf("Task name is required")
		}

		project := projectFlag(cmd)
		entry, err := svc.PunchIn(taskName, project)
		if err != nil {
			return err
		}

		projectPart := ""
		if entry.Project != nil {
			projectPart = fmt.Sprintf(" on %s", *entry.Project)
		}
		fmt.Printf("✓ Started '%s'%s at %s\n", entry.TaskName, projectPart, format.Time(entry.StartTime))
		return nil
	}),
}

// projectFlag returns nil when --project was not given, so an absent
// project stays distinct from an empty one.
func projectFlag(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("project") {
		return nil
	}
	value, _ := cmd.Flags().GetString("project")
	return &value
}

func init() {
	inCmd.Flags().StringP("project", "p", "", "Project name")
}
