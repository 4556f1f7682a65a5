package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/envtray/internal/tray"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	menuJSON   bool
	menuTokens bool
)

func init() {
	menuCmd.Flags().BoolVar(&menuJSON, "json", false, "output the menu nodes as JSON")
	menuCmd.Flags().BoolVar(&menuTokens, "tokens", false, "show the token carried by each item")
}

// resetMenuCommandState resets the menu command's global state for testing.
func resetMenuCommandState() {
	menuJSON = false
	menuTokens = false
}

// menuNodeJSON is the --json form of a tray.MenuNode.
type menuNodeJSON struct {
	Kind  string `json:"kind"`
	Label string `json:"label,omitempty"`
	Token string `json:"token,omitempty"`
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the tray menu without starting the tray",
	Long: `Builds the tray menu from the registered projects and prints it. Groups
that cannot be placed in the menu are listed as warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting menu command")

		tree, err := workflows.Tree(context.Background())
		if err != nil {
			return reportError(err)
		}

		menu, err := tray.BuildMenu(tree)
		var buildErr *tray.BuildError
		if errors.As(err, &buildErr) {
			for _, f := range buildErr.Failures {
				Logger.WarnfAlways("Group %q (%s) of %s is not shown: %v", f.GroupName, f.GroupID, f.EnvFilePath, f.Err)
			}
		} else if err != nil {
			return Logger.ErrorfAndReturn("failed to build menu: %v", err)
		}

		if menuJSON {
			nodes := make([]menuNodeJSON, 0, len(menu.Nodes))
			for _, n := range menu.Nodes {
				nodes = append(nodes, menuNodeJSON{Kind: n.Kind.String(), Label: n.Label, Token: n.Token})
			}
			data, err := json.MarshalIndent(nodes, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal menu to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		depth := 0
		for _, n := range menu.Nodes {
			switch n.Kind {
			case tray.NodeSeparator:
				fmt.Println(ui.Muted.Sprint("-----"))
				depth = 0
			case tray.NodeHeader:
				depth = headerDepth(n.Token)
				fmt.Println(strings.Repeat("  ", depth) + n.Label + tokenSuffix(n.Token))
			case tray.NodeAction:
				indent := strings.Repeat("  ", depth+1)
				if n.Token == tray.QuitToken {
					indent = ""
				}
				fmt.Println(indent + n.Label + tokenSuffix(n.Token))
			}
		}
		return nil
	},
}

// headerDepth indents env file headers under projects and categories under
// env files.
func headerDepth(token string) int {
	switch {
	case strings.HasPrefix(token, tray.HeaderToken(tray.HeaderEnvFile)):
		return 1
	case strings.HasPrefix(token, tray.HeaderToken(tray.HeaderCategory)):
		return 2
	default:
		return 0
	}
}

func tokenSuffix(token string) string {
	if !menuTokens || token == "" {
		return ""
	}
	return " " + ui.Muted.Sprint(token)
}
