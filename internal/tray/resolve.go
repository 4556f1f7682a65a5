package tray

import "strings"

// Activation is the outcome of resolving a clicked token. It is one of
// Terminate, Ignored, ApplyConfiguration or ResolutionFailed.
type Activation interface {
	activation()
}

// Terminate asks the host to quit.
type Terminate struct{}

// Ignored marks a token that belongs to no actionable item.
type Ignored struct {
	Token string
}

// ApplyConfiguration asks the application to apply a group.
type ApplyConfiguration struct {
	ProjectID   string
	EnvFilePath string
	GroupID     string
}

// ResolutionFailed carries a token that had the action prefix but could not
// be decoded.
type ResolutionFailed struct {
	Token string
	Err   error
}

func (Terminate) activation()          {}
func (Ignored) activation()            {}
func (ApplyConfiguration) activation() {}
func (ResolutionFailed) activation()   {}

// ApplyEvent is the notification delivered to the application layer.
type ApplyEvent struct {
	ProjectID   string `json:"project_id"`
	EnvFilePath string `json:"env_file_path"`
	GroupID     string `json:"group_id"`
}

// Event converts the activation into the notification payload.
func (a ApplyConfiguration) Event() ApplyEvent {
	return ApplyEvent{
		ProjectID:   a.ProjectID,
		EnvFilePath: a.EnvFilePath,
		GroupID:     a.GroupID,
	}
}

// ResolveActivation maps a token from the tray runtime to an Activation.
func ResolveActivation(token string) Activation {
	if token == QuitToken {
		return Terminate{}
	}
	if !strings.HasPrefix(token, ActionPrefix) {
		return Ignored{Token: token}
	}

	ref, err := DecodeAction(token)
	if err != nil {
		return ResolutionFailed{Token: token, Err: err}
	}
	return ApplyConfiguration{
		ProjectID:   ref.ProjectID,
		EnvFilePath: ref.EnvFilePath,
		GroupID:     ref.GroupID,
	}
}
