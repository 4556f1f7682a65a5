package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	templateAddName        string
	templateAddDescription string
	templateAddID          string
	templateListJSON       bool
)

func init() {
	templateAddCmd.Flags().StringVarP(&templateAddName, "name", "n", "", "template name, matching the category it describes (required)")
	templateAddCmd.Flags().StringVar(&templateAddDescription, "description", "", "free-form description")
	templateAddCmd.Flags().StringVar(&templateAddID, "replace", "", "id or name of a template to replace instead of adding one")
	templateListCmd.Flags().BoolVar(&templateListJSON, "json", false, "output as JSON")

	groupTemplateCmd.AddCommand(templateAddCmd)
	groupTemplateCmd.AddCommand(templateListCmd)
	groupTemplateCmd.AddCommand(templateCopyCmd)
	groupTemplateCmd.AddCommand(templateRemoveCmd)
}

var groupTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage category templates",
	Long: `A category template lists the keys that make up a category on one env
file. Adding a group with --category <template name> starts the group with
those keys.`,
}

var templateAddCmd = &cobra.Command{
	Use:   "add <project> <env-file> KEY...",
	Short: "Save a category template",
	Long: `Saves the keys that belong to a category.

Examples:
  envtray group template add api .env --name database DB_HOST DB_PORT DB_USER
  envtray group template add api .env --replace database --name database DB_URL`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting template add command")
		spinner, cleanup := startSpinner("Saving template...", verbose)
		defer cleanup()

		ctx := context.Background()
		projectID, err := resolveProject(ctx, args[0])
		if err != nil {
			return handleError(spinner, err)
		}

		template, err := workflows.SaveCategoryTemplate(ctx, workflows.SaveTemplateOptions{
			ProjectID:   projectID,
			EnvFile:     args[1],
			TemplateID:  templateAddID,
			Name:        templateAddName,
			Description: templateAddDescription,
			Keys:        args[2:],
		})
		if err != nil {
			return handleError(spinner, err)
		}

		verb := " Saved template "
		if templateAddID != "" {
			verb = " Replaced template "
		}
		spinner.FinalMSG = ui.SuccessMark() + verb + ui.Highlight.Sprint(template.Name) + " " + ui.Muted.Sprint(template.ID) +
			" with " + plural(len(template.Keys), "key")
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:     "list <project> <env-file>",
	Aliases: []string{"ls"},
	Short:   "List the category templates of an env file",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting template list command")
		ctx := context.Background()

		projectID, err := resolveProject(ctx, args[0])
		if err == nil {
			var templates []model.CategoryTemplate
			templates, err = workflows.ListCategoryTemplates(ctx, projectID, args[1])
			if err == nil {
				return printTemplates(templates)
			}
		}

		return reportError(err)
	},
}

func printTemplates(templates []model.CategoryTemplate) error {
	if templateListJSON {
		data, err := json.MarshalIndent(templates, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal templates to JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(templates) == 0 {
		fmt.Println("No category templates.")
		return nil
	}
	for _, t := range templates {
		fmt.Printf("%s %s\n", ui.Highlight.Sprint(t.Name), ui.Muted.Sprint(t.ID))
		if t.Description != "" {
			fmt.Println("  " + t.Description)
		}
		fmt.Println("  " + strings.Join(t.Keys, ", "))
	}
	return nil
}

var templateCopyCmd = &cobra.Command{
	Use:   "copy <project> <env-file> <template>",
	Short: "Duplicate a category template",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting template copy command")
		spinner, cleanup := startSpinner("Copying template...", verbose)
		defer cleanup()

		ctx := context.Background()
		ref, err := templateRefFromArgs(ctx, args)
		if err != nil {
			return handleError(spinner, err)
		}

		copied, err := workflows.CopyCategoryTemplate(ctx, ref)
		if err != nil {
			return handleError(spinner, err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Copied to " + ui.Highlight.Sprint(copied.Name) + " " + ui.Muted.Sprint(copied.ID)
		return nil
	},
}

var templateRemoveCmd = &cobra.Command{
	Use:     "remove <project> <env-file> <template>",
	Aliases: []string{"rm"},
	Short:   "Delete a category template",
	Long:    `Deletes a template. Groups created from it keep their variables.`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting template remove command")
		spinner, cleanup := startSpinner("Removing template...", verbose)
		defer cleanup()

		ctx := context.Background()
		ref, err := templateRefFromArgs(ctx, args)
		if err != nil {
			return handleError(spinner, err)
		}

		removed, err := workflows.RemoveCategoryTemplate(ctx, ref)
		if err != nil {
			return handleError(spinner, err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Removed template " + ui.Highlight.Sprint(removed.Name)
		return nil
	},
}

func templateRefFromArgs(ctx context.Context, args []string) (workflows.TemplateRef, error) {
	projectID, err := resolveProject(ctx, args[0])
	if err != nil {
		return workflows.TemplateRef{}, err
	}
	return workflows.TemplateRef{ProjectID: projectID, EnvFile: args[1], TemplateID: args[2]}, nil
}
