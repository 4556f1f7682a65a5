package cmd

import (
	logger "github.com/PolarWolf314/envtray/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Version is set at build time with
// -ldflags "-X github.com/PolarWolf314/envtray/cmd.Version=v1.2.3".
var Version = "dev"

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// printer formats counts with thousands separators.
	printer = message.NewPrinter(language.English)

	RootCmd = &cobra.Command{
		Use:   "envtray",
		Short: "Switch .env configurations from the system tray",
		Long: `envtray keeps named groups of environment variables for each of your
projects and writes them into the project's .env files on demand.

Groups are applied from a system tray menu (envtray tray) or from the
command line (envtray group apply).

Examples:
  # Register the project in the current directory
  envtray project add .

  # Save the current contents of a group
  envtray group add <project> .env --name staging API_URL=https://staging.example.com

  # Start the tray menu
  envtray tray`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing envtray with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(trayCmd)
	RootCmd.AddCommand(menuCmd)
	RootCmd.AddCommand(ProjectCmd)
	RootCmd.AddCommand(GroupCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetTrayCommandState()
	resetMenuCommandState()
	resetProjectCommandState()
	resetGroupCommandState()
	resetExportCommandState()
	resetImportCommandState()
	resetLogCommandState()
	resetVersionCommandState()
	resetConfigCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag so a reused command tree
// does not leak flags between tests.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
