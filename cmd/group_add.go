package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	groupAddName        string
	groupAddCategory    string
	groupAddDescription string
	groupAddFromFile    bool
)

func init() {
	groupAddCmd.Flags().StringVarP(&groupAddName, "name", "n", "", "group name (required)")
	groupAddCmd.Flags().StringVarP(&groupAddCategory, "category", "c", "", "category shown in the tray (default: from config.toml)")
	groupAddCmd.Flags().StringVar(&groupAddDescription, "description", "", "free-form description")
	groupAddCmd.Flags().BoolVar(&groupAddFromFile, "from-file", false, "start from the env file's current variables")
}

var groupAddCmd = &cobra.Command{
	Use:   "add <project> <env-file> [KEY=VALUE...]",
	Short: "Save a new configuration group",
	Long: `Saves a configuration group for an env file of a project.

Variables are given as KEY=VALUE arguments. With --from-file the group
starts from the variables currently in the env file and the arguments
override or extend them.

Examples:
  envtray group add api .env --name staging API_URL=https://staging.example.com
  envtray group add api .env.local --name "local db" --category database DB_HOST=localhost
  envtray group add api .env --name snapshot --from-file`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting group add command")
		spinner, cleanup := startSpinner("Saving group...", verbose)
		defer cleanup()

		ctx := context.Background()
		variables, err := workflows.ParseAssignments(args[2:])
		if err != nil {
			return handleError(spinner, err)
		}

		projectID, err := resolveProject(ctx, args[0])
		if err != nil {
			return handleError(spinner, err)
		}

		group, err := workflows.AddGroup(ctx, workflows.AddGroupOptions{
			ProjectID:   projectID,
			EnvFile:     args[1],
			Name:        groupAddName,
			Description: groupAddDescription,
			Category:    groupAddCategory,
			Variables:   variables,
			FromFile:    groupAddFromFile,
		})
		if err != nil {
			return handleError(spinner, err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Saved group " + ui.Highlight.Sprint(group.Name) + " " + ui.Muted.Sprint(group.ID) +
			" with " + plural(len(group.Variables), "variable")
		return nil
	},
}
