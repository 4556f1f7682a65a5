package persist

// ProjectGateway is the set of filesystem operations the workflows depend
// on. FS is the real implementation; tests substitute their own.
type ProjectGateway interface {
	ScanEnvFiles(root string) ([]EnvFile, error)
	LoadProjectConfig(root string) (*ProjectConfig, error)
	SaveProjectConfig(config *ProjectConfig) error
	ReadTextFile(path string) (string, error)
	WriteTextFile(path, content string) error
	WriteTextFileAll(path, content string) error
}

// FS implements ProjectGateway on the local filesystem.
type FS struct{}

var _ ProjectGateway = FS{}

func (FS) ScanEnvFiles(root string) ([]EnvFile, error)           { return ScanEnvFiles(root) }
func (FS) LoadProjectConfig(root string) (*ProjectConfig, error) { return LoadProjectConfig(root) }
func (FS) SaveProjectConfig(config *ProjectConfig) error         { return SaveProjectConfig(config) }
func (FS) ReadTextFile(path string) (string, error)              { return ReadTextFile(path) }
func (FS) WriteTextFile(path, content string) error              { return WriteTextFile(path, content) }
func (FS) WriteTextFileAll(path, content string) error           { return WriteTextFileAll(path, content) }
