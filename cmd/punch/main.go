package main

import (
	"fmt"
	"os"

	"github.com/punch-cli/punch/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(os.Args[1:]); err != nil {
		msg, code := commands.Describe(err)
		fmt.Fprintln(os.Stderr, "Error: "+msg)
		os.Exit(code)
	}
}
