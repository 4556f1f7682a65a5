package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var groupShowCmd = &cobra.Command{
	Use:   "show <project> <env-file> <group>",
	Short: "Print a group as env file lines",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group show command")

		content, err := renderGroupArgs(args)
		if err != nil {
			return reportError(err)
		}
		fmt.Print(ui.EnsureNewline(content))
		return nil
	},
}

var groupCopyCmd = &cobra.Command{
	Use:   "copy <project> <env-file> <group>",
	Short: "Copy a group's env file lines to the clipboard",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group copy command")
		spinner, cleanup := startSpinner("Copying group...", verbose)
		defer cleanup()

		content, err := renderGroupArgs(args)
		if err != nil {
			return handleError(spinner, err)
		}

		if clipboard.Unsupported {
			spinner.FinalMSG = ui.ErrorMark() + " No clipboard is available on this system\n" +
				ui.HintMark() + " Use " + ui.Code.Sprint("envtray group show") + " instead"
			return nil
		}
		if err := clipboard.WriteAll(content); err != nil {
			return Logger.ErrorfAndReturn("failed to write to clipboard: %v", err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Copied group " + ui.Highlight.Sprint(args[2]) + " to the clipboard"
		return nil
	},
}

func renderGroupArgs(args []string) (string, error) {
	ctx := context.Background()
	ref, err := groupRefFromArgs(ctx, args)
	if err != nil {
		return "", err
	}
	return workflows.RenderGroup(ctx, ref)
}
