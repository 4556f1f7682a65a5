package cmd

import (
	"context"
	"strings"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var groupApplyCmd = &cobra.Command{
	Use:   "apply <project> <env-file> <group>...",
	Short: "Write groups' variables into their env file",
	Long: `Merges the groups into the env file in one write. Keys the groups set are
overwritten in place, missing keys are appended and every other line is kept.

At most one group per category can be applied at once. Groups without a
category count as one category.

Applying a single group is what clicking it in the tray menu does.

Examples:
  envtray group apply api .env staging
  envtray group apply api .env.local "local db" "redis local"`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group apply command")
		spinner, cleanup := startSpinner("Applying group...", verbose)
		defer cleanup()

		ctx := context.Background()
		projectID, err := resolveProject(ctx, args[0])
		if err != nil {
			return handleError(spinner, err)
		}

		result, err := workflows.ApplyGroup(ctx, workflows.ApplyGroupOptions{
			ProjectID:   projectID,
			EnvFilePath: args[1],
			GroupIDs:    args[2:],
			Source:      "cli",
		})
		if err != nil {
			return handleError(spinner, err)
		}

		Logger.Debugf("Wrote %d bytes to %s", len(result.Content), result.EnvFile.Path)
		names := make([]string, len(result.Groups))
		for i, g := range result.Groups {
			names[i] = ui.Highlight.Sprint(g.Name)
		}
		spinner.FinalMSG = ui.SuccessMark() + " Applied " + strings.Join(names, ", ") + " to " + ui.Path.Sprint(result.EnvFile.Path)
		return nil
	},
}
