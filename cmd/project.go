package cmd

import (
	"github.com/spf13/cobra"
)

// ProjectCmd groups the commands that register and maintain projects.
var ProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage registered projects",
	Long: `Registers project directories with envtray and keeps their env file
lists in sync with the disk.

A project is referenced by its id, its name or its root path.`,
}

func init() {
	ProjectCmd.AddCommand(projectAddCmd)
	ProjectCmd.AddCommand(projectListCmd)
	ProjectCmd.AddCommand(projectRefreshCmd)
	ProjectCmd.AddCommand(projectRemoveCmd)
	ProjectCmd.AddCommand(projectScanCmd)
	ProjectCmd.AddCommand(projectSaveConfigCmd)
	ProjectCmd.AddCommand(projectMoveCmd)
}

// resetProjectCommandState resets the project commands' global state for testing.
func resetProjectCommandState() {
	projectAddName = ""
	projectListJSON = false
}
