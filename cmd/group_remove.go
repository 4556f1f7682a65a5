package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var groupRemoveCmd = &cobra.Command{
	Use:     "remove <project> <env-file> <group>",
	Aliases: []string{"rm"},
	Short:   "Delete a configuration group",
	Long:    `Deletes a saved group. The env file on disk is not changed.`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group remove command")
		spinner, cleanup := startSpinner("Removing group...", verbose)
		defer cleanup()

		ref, err := groupRefFromArgs(context.Background(), args)
		if err != nil {
			return handleError(spinner, err)
		}

		removed, err := workflows.RemoveGroup(context.Background(), ref)
		if err != nil {
			return handleError(spinner, err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Removed group " + ui.Highlight.Sprint(removed.Name)
		return nil
	},
}

// groupRefFromArgs builds a GroupRef from <project> <env-file> <group>.
func groupRefFromArgs(ctx context.Context, args []string) (workflows.GroupRef, error) {
	projectID, err := resolveProject(ctx, args[0])
	if err != nil {
		return workflows.GroupRef{}, err
	}
	return workflows.GroupRef{ProjectID: projectID, EnvFile: args[1], GroupID: args[2]}, nil
}
