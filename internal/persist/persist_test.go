package persist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestScanEnvFilesOrderAndSkips(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env.test"), "T=1\n")
	writeFile(t, filepath.Join(root, ".env"), "A=1\n")
	writeFile(t, filepath.Join(root, ".env.example"), "IGNORED=1\n")
	require.NoError(t, os.Mkdir(filepath.Join(root, ".env.local"), 0700))

	files, err := ScanEnvFiles(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, ".env", files[0].Name)
	assert.Equal(t, filepath.Join(root, ".env"), files[0].Path)
	assert.Equal(t, "A=1\n", files[0].Content)
	assert.Equal(t, ".env.test", files[1].Name)
}

func TestScanEnvFilesEmptyDirectory(t *testing.T) {
	files, err := ScanEnvFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanEnvFilesMissingRoot(t *testing.T) {
	_, err := ScanEnvFiles(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, kerrors.ErrProjectPathNotFound)

	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, "")
	_, err = ScanEnvFiles(file)
	assert.ErrorIs(t, err, kerrors.ErrProjectPathNotFound)
}

func TestReadTextFileStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "\ufeffKEY=value\n")

	content, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "KEY=value\n", content)
}

func TestReadTextFileMissing(t *testing.T) {
	_, err := ReadTextFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteTextFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, WriteTextFile(path, "A=1\n"))

	content, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A=1\n", content)
}

func TestWriteTextFileMissingDirectory(t *testing.T) {
	err := WriteTextFile(filepath.Join(t.TempDir(), "missing", ".env"), "A=1\n")

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
}

func TestLoadProjectConfigDefaults(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my-app")
	require.NoError(t, os.Mkdir(root, 0700))
	writeFile(t, filepath.Join(root, ".env"), "A=1\n")

	config, err := LoadProjectConfig(root)
	require.NoError(t, err)

	assert.Equal(t, "my-app", config.Name)
	assert.Equal(t, root, config.Path)
	require.Len(t, config.EnvFiles, 1)
	assert.Equal(t, ".env", config.EnvFiles[0].Name)
	require.Len(t, config.PresetConfigs, 2)
	assert.Equal(t, "Development", config.PresetConfigs[0].Title)
	assert.Equal(t, "Production", config.PresetConfigs[1].Title)
	assert.Empty(t, config.PresetConfigs[0].Variables)
}

func TestSaveThenLoadProjectConfig(t *testing.T) {
	root := t.TempDir()
	config := &ProjectConfig{
		Name: "svc",
		Path: root,
		PresetConfigs: []PresetConfig{
			{Title: "Development", Variables: map[string]string{"DEBUG": "true"}},
		},
	}
	require.NoError(t, SaveProjectConfig(config))

	loaded, err := LoadProjectConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "svc", loaded.Name)
	assert.Equal(t, []EnvFile{}, loaded.EnvFiles)
	assert.Equal(t, "true", loaded.PresetConfigs[0].Variables["DEBUG"])
}

func TestLoadProjectConfigRejectsInvalidDocument(t *testing.T) {
	root := t.TempDir()
	doc := map[string]any{
		"name":           "svc",
		"path":           root,
		"env_files":      "not-an-array",
		"preset_configs": []any{},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	writeFile(t, filepath.Join(root, ProjectConfigFile), string(data))

	_, err = LoadProjectConfig(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, kerrors.ErrInvalidProjectConfig)

	var verr *ConfigValidationError
	require.True(t, errors.As(err, &verr))
	require.NotEmpty(t, verr.Issues)
	assert.Equal(t, "/env_files", verr.Issues[0].Path)
}

func TestLoadProjectConfigRejectsMalformedJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ProjectConfigFile), "{ not json")

	_, err := LoadProjectConfig(root)
	assert.ErrorIs(t, err, kerrors.ErrInvalidProjectConfig)
}

func TestSaveProjectConfigRequiresPath(t *testing.T) {
	err := SaveProjectConfig(&ProjectConfig{Name: "x"})
	assert.ErrorIs(t, err, kerrors.ErrInvalidProjectConfig)
}
