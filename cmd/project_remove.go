package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var projectRemoveCmd = &cobra.Command{
	Use:     "remove <project>",
	Aliases: []string{"rm"},
	Short:   "Unregister a project",
	Long: `Removes the project and all of its saved groups from envtray. Files in
the project directory are not touched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting project remove command")
		spinner, cleanup := startSpinner("Removing project...", verbose)
		defer cleanup()

		ctx := context.Background()
		projectID, err := resolveProject(ctx, args[0])
		if err != nil {
			return handleError(spinner, err)
		}

		removed, err := workflows.RemoveProject(ctx, workflows.RemoveProjectOptions{ProjectID: projectID})
		if err != nil {
			return handleError(spinner, err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Removed " + ui.Highlight.Sprint(removed.Name) + " " + ui.Muted.Sprint(removed.Path)
		return nil
	},
}
