package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/envtray/internal/configs"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configShowJSON  bool
	configInitForce bool
)

// ConfigCmd groups the commands that inspect and create config.toml.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage envtray configuration",
	Long: `Shows or creates config.toml, which sets the store location, the export
directory, the tray appearance and update checks.

The file lives in the envtray config directory (override with
ENVTRAY_CONFIG_DIR).`,
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config.toml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigCommandState resets the config commands' global state for testing.
func resetConfigCommandState() {
	configShowJSON = false
	configInitForce = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the configuration envtray runs with: config.toml merged over the
defaults, with ~ expanded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		Logger.Debugf("Loading config from %s", configs.UserEnvtraySettings.ConfigPath)

		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		if configShowJSON {
			data, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		source := configs.UserEnvtraySettings.ConfigPath
		if _, err := os.Stat(source); os.IsNotExist(err) {
			source += " (not created, showing defaults)"
		}
		fmt.Println(ui.Muted.Sprint(source))
		return toml.NewEncoder(os.Stdout).Encode(config)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write config.toml with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		spinner, cleanup := startSpinner("Writing configuration...", verbose)
		defer cleanup()

		settings := configs.UserEnvtraySettings
		if _, err := os.Stat(settings.ConfigPath); err == nil && !configInitForce {
			spinner.FinalMSG = ui.WarningMark() + " " + ui.Path.Sprint(settings.ConfigPath) + " already exists\n" +
				ui.HintMark() + " Use " + ui.Code.Sprint("--force") + " to overwrite it"
			return nil
		}

		if err := configs.SaveConfig(settings, configs.Defaults(settings)); err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		spinner.FinalMSG = ui.SuccessMark() + " Wrote " + ui.Path.Sprint(settings.ConfigPath)
		return nil
	},
}
