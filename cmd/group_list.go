package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var groupListJSON bool

func init() {
	groupListCmd.Flags().BoolVar(&groupListJSON, "json", false, "output as JSON")
}

var groupListCmd = &cobra.Command{
	Use:     "list <project> [env-file]",
	Aliases: []string{"ls"},
	Short:   "List the groups of a project",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group list command")
		ctx := context.Background()

		projectID, err := resolveProject(ctx, args[0])
		if err == nil {
			envFileRef := ""
			if len(args) == 2 {
				envFileRef = args[1]
			}
			var listing []workflows.EnvFileGroups
			listing, err = workflows.ListGroups(ctx, projectID, envFileRef)
			if err == nil {
				return printGroupListing(listing)
			}
		}

		return reportError(err)
	},
}

func printGroupListing(listing []workflows.EnvFileGroups) error {
	if groupListJSON {
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal groups to JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for i, entry := range listing {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s %s\n", ui.Highlight.Sprint(entry.EnvFile.Name), ui.Muted.Sprint(entry.EnvFile.Path))
		if len(entry.Groups) == 0 {
			fmt.Println("  no groups")
			continue
		}
		for _, g := range entry.Groups {
			category := ""
			if g.Category != "" {
				category = " [" + g.Category + "]"
			}
			fmt.Printf("  %-20s %s%s  %s\n", g.Name, ui.Muted.Sprint(g.ID), category, plural(len(g.Variables), "variable"))
		}
	}
	return nil
}
