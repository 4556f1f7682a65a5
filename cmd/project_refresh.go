package cmd

import (
	"context"
	"strings"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/utils"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var projectRefreshCmd = &cobra.Command{
	Use:   "refresh <project>",
	Short: "Rescan a project's env files",
	Long: `Rescans the project directory. Env files that still exist keep their
groups, new env files get a Default group and files that were deleted are
dropped together with their groups.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting project refresh command")
		spinner, cleanup := startSpinner("Refreshing project...", verbose)
		defer cleanup()

		ctx := context.Background()
		projectID, err := resolveProject(ctx, args[0])
		if err != nil {
			return handleError(spinner, err)
		}

		result, err := workflows.RefreshProject(ctx, workflows.RefreshProjectOptions{ProjectID: projectID})
		if err != nil {
			return handleError(spinner, err)
		}

		finalMessage := ui.SuccessMark() + " Refreshed " + ui.Highlight.Sprint(result.Project.Name)
		if len(result.Added) == 0 && len(result.Removed) == 0 {
			finalMessage += "\n  No env file changes"
		}
		if len(result.Added) > 0 {
			finalMessage += "\n  Added: " + strings.TrimSuffix(utils.FormatPaths(result.Added), "\n")
		}
		if len(result.Removed) > 0 {
			finalMessage += "\n  Removed: " + strings.TrimSuffix(utils.FormatPaths(result.Removed), "\n")
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
