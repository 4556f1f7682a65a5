package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var projectListJSON bool

func init() {
	projectListCmd.Flags().BoolVar(&projectListJSON, "json", false, "output as JSON array")
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered projects",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting project list command")

		projects, err := workflows.ListProjects(context.Background())
		if err != nil {
			return reportError(err)
		}
		Logger.Debugf("Loaded %d projects", len(projects))

		if projectListJSON {
			data, err := json.MarshalIndent(projects, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal projects to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(projects) == 0 {
			fmt.Println("No projects registered.")
			fmt.Println(ui.HintMark() + " Run " + ui.Code.Sprint("envtray project add <path>") + " to register one")
			return nil
		}

		for _, p := range projects {
			groups := 0
			for _, f := range p.EnvFiles {
				groups += len(f.Groups)
			}
			fmt.Printf("%s  %s\n", ui.Highlight.Sprint(p.Name), ui.Muted.Sprint(p.ID))
			fmt.Printf("  %s\n", ui.Path.Sprint(p.Path))
			fmt.Printf("  %s, %s\n", plural(len(p.EnvFiles), "env file"), plural(groups, "group"))
		}
		return nil
	},
}
