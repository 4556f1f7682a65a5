package persist

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ProjectConfigFile is the per-project configuration file name.
const ProjectConfigFile = ".hold-config.json"

// Titles of the presets a new project configuration starts with.
var DefaultPresetTitles = []string{"Development", "Production"}

// ProjectConfig is the content of .hold-config.json.
type ProjectConfig struct {
	Name          string         `json:"name"`
	Path          string         `json:"path"`
	EnvFiles      []EnvFile      `json:"env_files"`
	PresetConfigs []PresetConfig `json:"preset_configs"`
}

// PresetConfig is a named variable set saved with the project.
type PresetConfig struct {
	Title     string            `json:"title"`
	Variables map[string]string `json:"variables"`
}

// ValidationIssue is one schema violation in a project configuration.
type ValidationIssue struct {
	Path    string
	Message string
}

// ConfigValidationError lists every schema violation found in a file.
type ConfigValidationError struct {
	File   string
	Issues []ValidationIssue
}

func (e *ConfigValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return fmt.Sprintf("%s: %v: %s", e.File, kerrors.ErrInvalidProjectConfig, strings.Join(parts, "; "))
}

func (e *ConfigValidationError) Unwrap() error { return kerrors.ErrInvalidProjectConfig }

//go:embed schema/project-config.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

func projectConfigSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("project-config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("project-config.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// LoadProjectConfig reads root/.hold-config.json. When the file does not
// exist a default configuration is returned: the directory name, the env
// files currently in root and the empty default presets.
func LoadProjectConfig(root string) (*ProjectConfig, error) {
	configPath := filepath.Join(root, ProjectConfigFile)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return defaultProjectConfig(root)
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: configPath, Err: err}
	}

	if err := validateProjectConfig(configPath, data); err != nil {
		return nil, err
	}

	var config ProjectConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", configPath, kerrors.ErrInvalidProjectConfig, err)
	}
	return &config, nil
}

// SaveProjectConfig writes the configuration to <config.Path>/.hold-config.json.
func SaveProjectConfig(config *ProjectConfig) error {
	if config.Path == "" {
		return fmt.Errorf("%w: path is empty", kerrors.ErrInvalidProjectConfig)
	}
	if config.EnvFiles == nil {
		config.EnvFiles = []EnvFile{}
	}
	if config.PresetConfigs == nil {
		config.PresetConfigs = []PresetConfig{}
	}
	for i := range config.PresetConfigs {
		if config.PresetConfigs[i].Variables == nil {
			config.PresetConfigs[i].Variables = map[string]string{}
		}
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project config: %w", err)
	}
	return WriteTextFile(filepath.Join(config.Path, ProjectConfigFile), string(data))
}

func defaultProjectConfig(root string) (*ProjectConfig, error) {
	envFiles, err := ScanEnvFiles(root)
	if err != nil {
		return nil, err
	}

	presets := make([]PresetConfig, 0, len(DefaultPresetTitles))
	for _, title := range DefaultPresetTitles {
		presets = append(presets, PresetConfig{Title: title, Variables: map[string]string{}})
	}

	return &ProjectConfig{
		Name:          filepath.Base(filepath.Clean(root)),
		Path:          root,
		EnvFiles:      envFiles,
		PresetConfigs: presets,
	}, nil
}

func validateProjectConfig(configPath string, data []byte) error {
	schema, err := projectConfigSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ConfigValidationError{File: configPath, Issues: []ValidationIssue{{Message: "not valid JSON: " + err.Error()}}}
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating %s: %w", configPath, err)
	}

	var issues []ValidationIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ConfigValidationError{File: configPath, Issues: issues}
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		*issues = append(*issues, ValidationIssue{Path: path, Message: msg})
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}
