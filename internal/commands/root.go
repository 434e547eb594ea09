package commands

import (
	"regexp"

	"github.com/spf13/cobra"

	"github.com/punch-cli/punch/internal/db"
	"github.com/punch-cli/punch/internal/punch"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "punch",
	Short: "A CLI time tracker",
	Long: `punch is a command-line time tracker. Punch in on a task, punch out
when you are done, fix up past entries, and review your log by day,
week, month, or project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version information stamped at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// withService opens the database for one invocation, closes it on every
// exit path, and hands the command a ready service. No global handle.
func withService(fn func(cmd *cobra.Command, args []string, svc *punch.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		gdb, err := db.Open()
		if err != nil {
			return err
		}
		defer db.Close(gdb)

		return fn(cmd, args, punch.NewService(db.NewEntryStore(gdb)))
	}
}

var positionArgRe = regexp.MustCompile(`^-\d+$`)

// normalizeArgs moves position references like -1 behind a "--" so pflag
// does not reject them as unknown flags. Only the edit command takes
// positions, and edit.go re-classifies its positionals afterwards.
func normalizeArgs(args []string) []string {
	if len(args) == 0 || args[0] != "edit" {
		return args
	}

	var normal, positions []string
	for _, a := range args {
		if a == "--" {
			// User already separated args; leave everything alone.
			return args
		}
		if positionArgRe.MatchString(a) {
			positions = append(positions, a)
			continue
		}
		normal = append(normal, a)
	}
	if len(positions) == 0 {
		return args
	}

	normal = append(normal, "--")
	return append(normal, positions...)
}

// Execute runs the root command against the given argument list
// (os.Args[1:] in production).
func Execute(args []string) error {
	rootCmd.SetArgs(normalizeArgs(args))
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
