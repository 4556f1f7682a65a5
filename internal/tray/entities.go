package tray

// Project is the top level of the tray hierarchy.
type Project struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	EnvFiles []EnvFile `json:"env_files"`
}

// EnvFile is one recognised env file within a project. Path is the identity
// key carried in action tokens; Name is only displayed.
type EnvFile struct {
	Name       string     `json:"name"`
	Path       string     `json:"path"`
	Categories []Category `json:"categories"`
}

// Category is a display-only grouping of configuration groups.
type Category struct {
	Name   string  `json:"name"`
	Groups []Group `json:"groups"`
}

// Group is an applicable configuration. ProjectID and EnvFilePath repeat the
// keys of the ancestors it is nested under and are what ends up in its token.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProjectID   string `json:"project_id"`
	EnvFilePath string `json:"env_file_path"`
}
