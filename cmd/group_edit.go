package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	groupEditName        string
	groupEditCategory    string
	groupEditDescription string
	groupEditUnset       []string
)

func init() {
	groupEditCmd.Flags().StringVarP(&groupEditName, "name", "n", "", "new group name")
	groupEditCmd.Flags().StringVarP(&groupEditCategory, "category", "c", "", "new category (empty string clears it)")
	groupEditCmd.Flags().StringVar(&groupEditDescription, "description", "", "new description")
	groupEditCmd.Flags().StringSliceVar(&groupEditUnset, "unset", nil, "remove a key from the group (repeatable)")
}

var groupEditCmd = &cobra.Command{
	Use:   "edit <project> <env-file> <group> [KEY=VALUE...]",
	Short: "Change a saved configuration group",
	Long: `Edits a group in place. Its id, and so its entry in the tray menu, stays
the same.

Only the flags you pass are changed. KEY=VALUE arguments override existing
keys or add new ones, and --unset removes keys.

Examples:
  envtray group edit api .env staging API_URL=https://staging2.example.com
  envtray group edit api .env staging --name "staging eu" --unset DEBUG
  envtray group edit api .env.local "local db" --category ""`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group edit command")
		spinner, cleanup := startSpinner("Updating group...", verbose)
		defer cleanup()

		ctx := context.Background()
		variables, err := workflows.ParseAssignments(args[3:])
		if err != nil {
			return handleError(spinner, err)
		}

		ref, err := groupRefFromArgs(ctx, args[:3])
		if err != nil {
			return handleError(spinner, err)
		}

		opts := workflows.UpdateGroupOptions{
			ProjectID: ref.ProjectID,
			EnvFile:   ref.EnvFile,
			GroupID:   ref.GroupID,
			Variables: variables,
			Unset:     groupEditUnset,
		}
		if cmd.Flags().Changed("name") {
			opts.Name = &groupEditName
		}
		if cmd.Flags().Changed("category") {
			opts.Category = &groupEditCategory
		}
		if cmd.Flags().Changed("description") {
			opts.Description = &groupEditDescription
		}

		group, err := workflows.UpdateGroup(ctx, opts)
		if err != nil {
			return handleError(spinner, err)
		}

		Logger.Debugf("Group %s now has %d variables", group.ID, len(group.Variables))
		spinner.FinalMSG = ui.SuccessMark() + " Updated group " + ui.Highlight.Sprint(group.Name) + " " + ui.Muted.Sprint(group.ID) +
			" with " + plural(len(group.Variables), "variable")
		return nil
	},
}
