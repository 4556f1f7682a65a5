package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var projectMoveCmd = &cobra.Command{
	Use:   "move <project> <new-path>",
	Short: "Point a project at a new directory",
	Long: `Updates the root of a project whose directory was moved or renamed.
Saved groups are kept and env file paths are rewritten under the new root.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting project move command")
		spinner, cleanup := startSpinner("Moving project...", verbose)
		defer cleanup()

		ctx := context.Background()
		projectID, err := resolveProject(ctx, args[0])
		if err != nil {
			return handleError(spinner, err)
		}

		project, err := workflows.MoveProject(ctx, workflows.MoveProjectOptions{
			ProjectID: projectID,
			NewPath:   args[1],
		})
		if err != nil {
			return handleError(spinner, err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Moved " + ui.Highlight.Sprint(project.Name) + " to " + ui.Path.Sprint(project.Path)
		return nil
	},
}
