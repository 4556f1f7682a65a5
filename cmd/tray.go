package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/PolarWolf314/envtray/internal/configs"
	"github.com/PolarWolf314/envtray/internal/tray"
	"github.com/PolarWolf314/envtray/internal/trayhost"
	"github.com/PolarWolf314/envtray/internal/ui"
	"github.com/PolarWolf314/envtray/internal/workflows"
	"github.com/spf13/cobra"
)

var trayNoUpdateCheck bool

func init() {
	trayCmd.Flags().BoolVar(&trayNoUpdateCheck, "no-update-check", false, "skip the release check at startup")
}

// resetTrayCommandState resets the tray command's global state for testing.
func resetTrayCommandState() {
	trayNoUpdateCheck = false
}

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Run the system tray menu",
	Long: `Starts envtray in the system tray. The menu lists every project, its env
files and their groups by category. Clicking a group applies it to its env
file. The menu is rebuilt whenever the project store changes, so commands
run in another terminal show up immediately.

The tray runs until Quit is clicked or the process is interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting tray command")

		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(config.Store.Path), 0700); err != nil {
			return Logger.ErrorfAndReturn("failed to create %s: %v", filepath.Dir(config.Store.Path), err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		systray := trayhost.NewSystray()
		host := newTrayHost(ctx, systray)

		onReady := func() {
			if err := host.Refresh(ctx); err != nil {
				Logger.Errorf("Tray menu could not be built: %v", err)
			}
			if err := host.WatchStore(ctx, config.Store.Path); err != nil {
				Logger.WarnfAlways("Not watching %s for changes: %v", config.Store.Path, err)
			}
			go func() {
				<-ctx.Done()
				systray.Quit()
			}()
			if !trayNoUpdateCheck && config.Updates.CheckEnabled() {
				go reportTrayUpdate(ctx, config)
			}
			Logger.Infof("Tray ready, watching %s", config.Store.Path)
		}

		systray.Run(trayhost.Appearance{
			Title:   config.Tray.Title,
			Tooltip: config.Tray.Tooltip,
		}, onReady, cancel)

		Logger.Infof("Tray stopped")
		return nil
	},
}

// newTrayHost wires the tray to the project store: the menu is built from
// workflows.Tree and clicks apply through workflows.ApplyGroup.
func newTrayHost(ctx context.Context, t trayhost.Tray) *trayhost.Host {
	return trayhost.NewHost(ctx, trayhost.Options{
		Tray: t,
		Applier: trayhost.ApplierFunc(func(ctx context.Context, event tray.ApplyEvent) error {
			_, err := workflows.ApplyGroup(ctx, workflows.ApplyGroupOptions{
				ProjectID:   event.ProjectID,
				EnvFilePath: event.EnvFilePath,
				GroupID:     event.GroupID,
				Source:      "tray",
			})
			return err
		}),
		Source: trayhost.TreeSourceFunc(workflows.Tree),
		Logger: Logger,
	})
}

func reportTrayUpdate(ctx context.Context, config *configs.Config) {
	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	result, err := checkForUpdate(ctx, config)
	if err != nil {
		Logger.Debugf("Update check failed: %v", err)
		return
	}
	if result.UpdateAvailable {
		fmt.Println(formatUpdateResult(result))
		return
	}
	Logger.Infof("%s", ui.SuccessMark()+" envtray is up to date")
}
