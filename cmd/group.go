package cmd

import (
	"github.com/spf13/cobra"
)

// GroupCmd groups the commands that manage configuration groups.
var GroupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage configuration groups",
	Long: `A configuration group is a named set of variables saved for one env file
of a project. Applying a group writes its variables into the env file.

Groups are referenced by id or name; env files by path or name (e.g. .env.local).

A category template lists the keys a category is made of. A group added to
that category starts with those keys.`,
}

func init() {
	GroupCmd.AddCommand(groupListCmd)
	GroupCmd.AddCommand(groupAddCmd)
	GroupCmd.AddCommand(groupEditCmd)
	GroupCmd.AddCommand(groupRemoveCmd)
	GroupCmd.AddCommand(groupApplyCmd)
	GroupCmd.AddCommand(groupShowCmd)
	GroupCmd.AddCommand(groupCopyCmd)
	GroupCmd.AddCommand(groupTemplateCmd)
}

// resetGroupCommandState resets the group commands' global state for testing.
func resetGroupCommandState() {
	groupAddName = ""
	groupAddCategory = ""
	groupAddDescription = ""
	groupAddFromFile = false
	groupListJSON = false
	groupEditName = ""
	groupEditCategory = ""
	groupEditDescription = ""
	groupEditUnset = nil
	templateAddName = ""
	templateAddDescription = ""
	templateAddID = ""
	templateListJSON = false
}
