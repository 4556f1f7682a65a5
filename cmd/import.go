package cmd

import (
	"context"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/utils"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "show what would be imported without saving")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importDryRun = false
}

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import projects from an export file",
	Long: `Adds the projects of an export file to envtray. Use - to read from stdin.

JSON and YAML files are accepted holding a list of projects,
{"projects": [...]} or {"project": {...}}. Projects whose path is already
registered are skipped.

Examples:
  envtray import ~/backups/default.json
  envtray import api_20240309_140506.json --dry-run
  cat default.json | envtray import -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")
		spinner, cleanup := startSpinner("Importing projects...", verbose)
		defer cleanup()

		opts := workflows.ImportOptions{Path: args[0], DryRun: importDryRun}
		if args[0] == "-" {
			if utils.IsInputTerminal() {
				return handleError(spinner, fmt.Errorf("%w: nothing piped on stdin", kerrors.ErrInvalidImport))
			}
			opts.Path = "stdin"
			opts.Input = os.Stdin
		}

		result, err := workflows.Import(context.Background(), opts)
		if err != nil {
			return handleError(spinner, err)
		}

		verb := "Imported"
		if importDryRun {
			verb = "Would import"
		}
		finalMessage := ui.SuccessMark() + " " + verb + " " + plural(len(result.Imported), "project")
		for _, p := range result.Imported {
			finalMessage += "\n  + " + p.Name + " " + ui.Muted.Sprint(p.Path)
		}
		if len(result.Skipped) > 0 {
			finalMessage += "\n" + ui.WarningMark() + " Skipped " + plural(len(result.Skipped), "project") + " already registered"
			for _, p := range result.Skipped {
				finalMessage += "\n  - " + p.Name + " " + ui.Muted.Sprint(p.Path)
			}
		}
		if result.RegeneratedIDs > 0 {
			finalMessage += "\n" + ui.Info.Sprint("ℹ") + " Assigned new ids to " + printer.Sprintf("%d", result.RegeneratedIDs) + " projects or groups"
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
