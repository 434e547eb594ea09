package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/punch-cli/punch/internal/format"
	"github.com/punch-cli/punch/internal/punch"
)

var outCmd = &cobra.Command{
	Use:     "out",
	Aliases: []string{"stop"},
	Short:   "Stop tracking time",
	Long: `Stop the active task. The end time defaults to now; --at accepts
HH:MM, 2pm, 14h, or "YYYY-MM-DD HH:MM".

Examples:
  punch out
  punch out --at 17:30`,
	Args: cobra.NoArgs,
	RunE: withService(func(cmd *cobra.Command, args []string, svc *punch.Service) error {
		at, _ := cmd.Flags().GetString("at")

		entry, err := svc.PunchOut(at)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Stopped '%s' - worked %s\n",
			entry.TaskName, format.Duration(entry.StartTime, entry.EndTime))
		return nil
	}),
}

func init() {
	outCmd.Flags().StringP("at", "a", "", "Custom end time (HH:MM, 2pm, ...)")
}
