package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/punch-cli/punch/internal/format"
	"github.com/punch-cli/punch/internal/punch"
	"github.com/punch-cli/punch/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active task",
	Long: `Show what is being tracked right now. With --watch, a live view keeps
the elapsed time ticking; press s there to punch out, or q to leave the
task running.`,
	Args: cobra.NoArgs,
	RunE: withService(func(cmd *cobra.Command, args []string, svc *punch.Service) error {
		entry, err := svc.Active()
		if err != nil {
			return err
		}
		if entry == nil {
			fmt.Println("No active task")
			return nil
		}

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			return tui.RunStatusTUI(svc, entry)
		}

		now := time.Now()
		projectPart := ""
		if entry.Project != nil {
			projectPart = fmt.Sprintf(" on %s", *entry.Project)
		}
		fmt.Printf("⏱  Tracking '%s'%s\n", entry.TaskName, projectPart)
		fmt.Printf("Started %s at %s\n", format.Date(entry.StartTime, now), format.Time(entry.StartTime))
		fmt.Printf("Elapsed: %s\n", format.Duration(entry.StartTime, &now))
		return nil
	}),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("punch %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	statusCmd.Flags().BoolP("watch", "w", false, "Live view with a ticking timer")
}
