package cmd

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/PolarWolf314/envtray/internal/configs"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/updater"
	"github.com/PolarWolf314/envtray/internal/utils"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var versionCheck bool

// updateCheckTimeout bounds the GitHub request so a slow network does not
// hold up the command.
const updateCheckTimeout = 5 * time.Second

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}

// resetVersionCommandState resets the version command's global state for testing.
func resetVersionCommandState() {
	versionCheck = false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the envtray version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting version command")

		if utils.IsOutputTerminal() {
			figure.NewColorFigure("envtray", "small", "cyan", true).Print()
			fmt.Println()
		}
		fmt.Printf("envtray %s (%s/%s, %s)\n", Version, runtime.GOOS, runtime.GOARCH, runtime.Version())

		if !versionCheck {
			return nil
		}

		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()
		result, err := checkForUpdate(ctx, config)
		if err != nil {
			fmt.Println(ui.WarningMark() + " Could not check for updates: " + err.Error())
			return nil
		}
		fmt.Println(formatUpdateResult(result))
		return nil
	},
}

func checkForUpdate(ctx context.Context, config *configs.Config) (*updater.VersionCache, error) {
	checker := updater.NewChecker(config.Updates.Repo)
	Logger.Debugf("Checking %s for releases newer than %s", config.Updates.Repo, Version)
	return checker.Check(ctx, configs.UserEnvtraySettings.ConfigDir, Version)
}

func formatUpdateResult(result *updater.VersionCache) string {
	switch {
	case result.LatestVersion == "":
		return ui.Info.Sprint("ℹ") + " Development build, update checks are skipped"
	case result.UpdateAvailable:
		msg := ui.Info.Sprint("→") + " envtray " + ui.Highlight.Sprint(result.LatestVersion) + " is available"
		if result.ReleaseURL != "" {
			msg += ": " + result.ReleaseURL
		}
		return msg
	default:
		return ui.SuccessMark() + " envtray is up to date"
	}
}
