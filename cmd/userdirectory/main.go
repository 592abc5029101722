// Command userdirectory runs the user directory HTTP API and its maintenance
// tasks.
//
// @title        User Directory API
// @version      1.0
// @description  Create and list users, each optionally linked to a role.
// @BasePath     /
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "userdirectory",
		Short:        "User directory service",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	return root
}
