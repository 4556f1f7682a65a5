package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var projectSaveConfigCmd = &cobra.Command{
	Use:   "save-config <project>",
	Short: "Write the project's groups to .hold-config.json",
	Long: `Writes .hold-config.json in the project root. Each saved group becomes a
preset so the groups can be committed and shared with the project.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting project save-config command")
		spinner, cleanup := startSpinner("Saving project configuration...", verbose)
		defer cleanup()

		ctx := context.Background()
		projectID, err := resolveProject(ctx, args[0])
		if err != nil {
			return handleError(spinner, err)
		}

		result, err := workflows.SaveProjectConfig(ctx, projectID)
		if err != nil {
			return handleError(spinner, err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Saved " + plural(result.Presets, "preset") + " to " + ui.Path.Sprint(result.Path)
		return nil
	},
}
