package errors

import "errors"

// Store errors indicate a referenced entity is missing or already present.
var (
	// ErrProjectNotFound indicates no project with the given id is registered.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectExists indicates a project with the same root path is already registered.
	ErrProjectExists = errors.New("project already registered")

	// ErrAmbiguousProject indicates a project name matches more than one project.
	ErrAmbiguousProject = errors.New("project name is ambiguous")

	// ErrEnvFileNotFound indicates the project has no env file with the given path or name.
	ErrEnvFileNotFound = errors.New("env file not found")

	// ErrGroupNotFound indicates the env file has no group with the given id.
	ErrGroupNotFound = errors.New("configuration group not found")

	// ErrInvalidGroup indicates a group definition is missing required fields.
	ErrInvalidGroup = errors.New("invalid configuration group")

	// ErrTemplateNotFound indicates the env file has no category template with the given id or name.
	ErrTemplateNotFound = errors.New("category template not found")

	// ErrInvalidTemplate indicates a category template has no name or no keys.
	ErrInvalidTemplate = errors.New("invalid category template")
)

// Filesystem errors indicate the project directory or its files are unusable.
var (
	// ErrProjectPathNotFound indicates the project root does not exist.
	ErrProjectPathNotFound = errors.New("project path does not exist")

	// ErrInvalidProjectConfig indicates .hold-config.json is malformed or fails validation.
	ErrInvalidProjectConfig = errors.New("project configuration is invalid")

	// ErrInvalidStore indicates the project store file could not be decoded.
	ErrInvalidStore = errors.New("project store is invalid")
)

// Transfer errors indicate an export or import could not proceed.
var (
	// ErrNoProjects indicates there is nothing to export.
	ErrNoProjects = errors.New("no projects registered")

	// ErrInvalidImport indicates the import file has none of the accepted shapes.
	ErrInvalidImport = errors.New("import file does not contain a project list")
)

// Input errors indicate a malformed command-line value.
var (
	// ErrInvalidDateFormat indicates a date flag is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrNoAuditLog indicates no operation has been recorded yet.
	ErrNoAuditLog = errors.New("no audit log found")
)
