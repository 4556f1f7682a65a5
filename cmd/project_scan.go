package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var projectScanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "List the env files envtray would pick up",
	Long:  `Shows the recognised env files under path without registering anything.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting project scan command")

		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		files, err := workflows.ScanProject(context.Background(), path)
		if err != nil {
			return reportError(err)
		}

		if len(files) == 0 {
			fmt.Println("No env files found.")
			return nil
		}
		for _, f := range files {
			fmt.Printf("%-18s %s\n", f.Name, ui.Path.Sprint(f.Path))
		}
		return nil
	},
}
