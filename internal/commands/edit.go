package commands

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/punch-cli/punch/internal/format"
	"github.com/punch-cli/punch/internal/punch"
)

// idPrefixArgRe decides whether a lone positional is an id prefix rather
// than a new task name. Entry ids are lowercase hex uuids, so anything
// made of hex digits and dashes reads as a reference.
var idPrefixArgRe = regexp.MustCompile(`^[0-9a-fA-F-]+$`)

var editCmd = &cobra.Command{
	Use:   "edit [<id-or-position>] [task-name]",
	Short: "Edit a time entry",
	Long: `Edit an entry's task name, project, start time, or end time.

The entry can be picked three ways: by an id prefix (shown in the log),
by position (-1 is the most recent entry, -2 the one before), or not at
all, which targets the active entry or, failing that, the last one.

Times accept HH:MM, 2pm, 14h, or "YYYY-MM-DD HH:MM", and land on the day
the entry was worked.

Examples:
  punch edit "Better task name"
  punch edit -1 --end 17:00
  punch edit 3f2a --project backend --start 9:15`,
	RunE: withService(func(cmd *cobra.Command, args []string, svc *punch.Service) error {
		reference, taskName, err := classifyEditArgs(args)
		if err != nil {
			return err
		}

		opts := punch.EditOptions{Reference: reference}
		if taskName != "" {
			opts.TaskName = &taskName
		}
		if cmd.Flags().Changed("project") {
			project, _ := cmd.Flags().GetString("project")
			opts.Project = &project
		}
		if cmd.Flags().Changed("start") {
			start, _ := cmd.Flags().GetString("start")
			opts.Start = &start
		}
		if cmd.Flags().Changed("end") {
			end, _ := cmd.Flags().GetString("end")
			opts.End = &end
		}

		entry, err := svc.Edit(opts)
		if err != nil {
			return err
		}

		projectPart := ""
		if entry.Project != nil {
			projectPart = fmt.Sprintf(" on %s", *entry.Project)
		}
		fmt.Printf("✓ Updated '%s'%s starting at %s\n",
			entry.TaskName, projectPart, format.Time(entry.StartTime))
		return nil
	}),
}

// classifyEditArgs splits edit's positionals into an entry reference and
// a replacement task name. Position tokens (-1, -2) may appear anywhere
// because root.go moves them behind "--" before parsing.
func classifyEditArgs(args []string) (reference, taskName string, err error) {
	var rest []string
	for _, a := range args {
		if positionArgRe.MatchString(a) && reference == "" {
			reference = a
			continue
		}
		rest = append(rest, a)
	}

	switch len(rest) {
	case 0:
	case 1:
		if reference == "" && idPrefixArgRe.MatchString(rest[0]) {
			reference = rest[0]
		} else {
			taskName = rest[0]
		}
	case 2:
		if reference != "" {
			return "", "", usageErrorf("Too many arguments. Usage: punch edit [<id-or-position>] [task-name] [--flags]")
		}
		reference = rest[0]
		taskName = rest[1]
	default:
		return "", "", usageErrorf("Too many arguments. Usage: punch edit [<id-or-position>] [task-name] [--flags]")
	}
	return reference, taskName, nil
}

func init() {
	editCmd.Flags().StringP("project", "p", "", "Update project")
	editCmd.Flags().String("start", "", "Update start time (HH:MM, 2pm, YYYY-MM-DD HH:MM)")
	editCmd.Flags().String("end", "", "Update end time (HH:MM, 2pm, YYYY-MM-DD HH:MM)")
}
