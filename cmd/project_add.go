package cmd

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/persist"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/utils"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var projectAddName string

func init() {
	projectAddCmd.Flags().StringVar(&projectAddName, "name", "", "display name (default: from .hold-config.json or the directory name)")
}

var projectAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Register a project directory",
	Long: `Registers the project rooted at path. Without a path, the nearest
directory holding .hold-config.json at or above the current directory is
used, falling back to the current directory.

The recognised env files (.env, .env.local, .env.development, .env.production
and .env.test) are scanned and each gets a Default group holding its current
content. Presets saved in .hold-config.json become groups in the Presets
category.

Examples:
  envtray project add
  envtray project add ~/code/api --name "API server"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting project add command")
		spinner, cleanup := startSpinner("Registering project...", verbose)
		defer cleanup()

		path := "."
		if len(args) == 1 {
			path = args[0]
		} else if root, err := utils.FindProjectRoot(".", persist.ProjectConfigFile); err != nil {
			Logger.Debugf("Project root search failed: %v", err)
		} else if root != "" {
			path = root
		}
		Logger.Debugf("Project path: %s", path)

		result, err := workflows.AddProject(context.Background(), workflows.AddProjectOptions{
			Path: path,
			Name: projectAddName,
		})
		if err != nil {
			return handleError(spinner, err)
		}

		project := result.Project
		Logger.Infof("Registered %s as %s", project.Path, project.ID)

		finalMessage := ui.SuccessMark() + " Registered " + ui.Highlight.Sprint(project.Name) + " " + ui.Muted.Sprint(project.ID) + "\n" +
			"  " + ui.Path.Sprint(project.Path) + "\n"
		if len(project.EnvFiles) == 0 {
			finalMessage += ui.WarningMark() + " No env files found. Create one and run " + ui.Code.Sprint("envtray project refresh "+project.ID)
		} else {
			names := ""
			for _, f := range project.EnvFiles {
				names += f.Name + "\n"
			}
			finalMessage += "  " + plural(len(project.EnvFiles), "env file") + ":\n" + ui.Indent(names, 2)
		}
		if result.PresetGroups > 0 {
			finalMessage += "  " + plural(result.PresetGroups, "preset group") + " created from .hold-config.json"
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
