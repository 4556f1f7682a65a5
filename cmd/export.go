package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	exportOutputDir string
	exportProject   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", "", "output directory (default: [export] dir from config.toml)")
	exportCmd.Flags().StringVarP(&exportProject, "project", "p", "", "export a single project")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportOutputDir = ""
	exportProject = ""
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export projects and their groups to a JSON file",
	Long: `Writes the registered projects to a JSON file that envtray import accepts.

Without --project every project is written to default.json. With --project
only that project is written, to <name>_<YYYYMMDD_HHMMSS>.json.

Examples:
  envtray export
  envtray export -o ~/backups
  envtray export --project api`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")
		spinner, cleanup := startSpinner("Exporting projects...", verbose)
		defer cleanup()

		ctx := context.Background()
		opts := workflows.ExportOptions{OutputDir: exportOutputDir}
		if exportProject != "" {
			projectID, err := resolveProject(ctx, exportProject)
			if err != nil {
				return handleError(spinner, err)
			}
			opts.ProjectID = projectID
		}

		result, err := workflows.Export(ctx, opts)
		if err != nil {
			return handleError(spinner, err)
		}

		Logger.Infof("Export written to %s", result.OutputPath)
		spinner.FinalMSG = ui.SuccessMark() + " Exported " + plural(result.ProjectCount, "project") + " to " + ui.Path.Sprint(result.OutputPath)
		return nil
	},
}
