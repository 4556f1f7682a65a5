package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/envtray/internal/utils"
)

type UserSettings struct {
	ConfigDir  string
	ConfigPath string
	StorePath  string
	AuditPath  string
	HomeDir    string
	Username   string
}

// UserEnvtraySettings is computed once at startup. Tests replace it with
// NewUserSettings(t.TempDir()).
var UserEnvtraySettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir := os.Getenv("ENVTRAY_CONFIG_DIR")
	if configDir == "" {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("error getting config directory: %s", err)
		}
		configDir = filepath.Join(userConfigDir, "envtray")
	}

	UserEnvtraySettings = NewUserSettings(configDir)
	UserEnvtraySettings.HomeDir = homeDir
}

// NewUserSettings lays out the envtray files under configDir.
func NewUserSettings(configDir string) *UserSettings {
	username, err := utils.GetUsername()
	if err != nil {
		username = "unknown"
	}
	homeDir, _ := os.UserHomeDir()

	return &UserSettings{
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, "config.toml"),
		StorePath:  filepath.Join(configDir, "projects.json"),
		AuditPath:  filepath.Join(configDir, "audit.jsonl"),
		HomeDir:    homeDir,
		Username:   username,
	}
}
