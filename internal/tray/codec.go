package tray

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ActionPrefix starts every token that refers to a configuration group.
	ActionPrefix = "tray-config:"

	// LabelPrefix starts every header token.
	LabelPrefix = "label-"

	// QuitToken is the sentinel carried by the Quit item.
	QuitToken = "quit-app"

	delimiter = ':'
)

var (
	// ErrUnsafeIdentifier is returned when a project or group id would make
	// a token ambiguous.
	ErrUnsafeIdentifier = errors.New("identifier contains characters outside [A-Za-z0-9_-]")

	// ErrNotATargetToken is returned for tokens of non-actionable or foreign
	// menu items.
	ErrNotATargetToken = errors.New("token does not refer to a configuration group")

	// ErrMalformedToken is returned for tokens that carry the action prefix
	// but do not split into project id, env-file path and group id.
	ErrMalformedToken = errors.New("malformed configuration token")
)

// EncodeError reports which field of an action failed validation.
type EncodeError struct {
	Field string
	Value string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, ErrUnsafeIdentifier)
}

func (e *EncodeError) Unwrap() error { return ErrUnsafeIdentifier }

// DecodeError reports why a token could not be decoded. Kind is either
// ErrNotATargetToken or ErrMalformedToken.
type DecodeError struct {
	Token  string
	Kind   error
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", e.Kind, e.Token)
	}
	return fmt.Sprintf("%v: %q: %s", e.Kind, e.Token, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Kind }

// ActionRef is the (project, env file, group) triple an action token encodes.
type ActionRef struct {
	ProjectID   string
	EnvFilePath string
	GroupID     string
}

// IsSafeIdentifier reports whether id is non-empty and made only of ASCII
// letters, digits, '-' and '_'.
func IsSafeIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// EncodeAction builds the token for a group. envFilePath is copied verbatim.
func EncodeAction(projectID, envFilePath, groupID string) (string, error) {
	if !IsSafeIdentifier(projectID) {
		return "", &EncodeError{Field: "project id", Value: projectID}
	}
	if !IsSafeIdentifier(groupID) {
		return "", &EncodeError{Field: "group id", Value: groupID}
	}

	var b strings.Builder
	b.Grow(len(ActionPrefix) + len(projectID) + len(envFilePath) + len(groupID) + 2)
	b.WriteString(ActionPrefix)
	b.WriteString(projectID)
	b.WriteByte(delimiter)
	b.WriteString(envFilePath)
	b.WriteByte(delimiter)
	b.WriteString(groupID)
	return b.String(), nil
}

// DecodeAction is the inverse of EncodeAction.
func DecodeAction(token string) (ActionRef, error) {
	rest, ok := strings.CutPrefix(token, ActionPrefix)
	if !ok {
		return ActionRef{}, &DecodeError{Token: token, Kind: ErrNotATargetToken}
	}

	first := strings.IndexByte(rest, delimiter)
	last := strings.LastIndexByte(rest, delimiter)
	if first < 0 || first == last {
		return ActionRef{}, &DecodeError{Token: token, Kind: ErrMalformedToken, Reason: "expected three fields"}
	}

	ref := ActionRef{
		ProjectID:   rest[:first],
		EnvFilePath: rest[first+1 : last],
		GroupID:     rest[last+1:],
	}
	if !IsSafeIdentifier(ref.ProjectID) {
		return ActionRef{}, &DecodeError{Token: token, Kind: ErrMalformedToken, Reason: "invalid project id"}
	}
	if !IsSafeIdentifier(ref.GroupID) {
		return ActionRef{}, &DecodeError{Token: token, Kind: ErrMalformedToken, Reason: "invalid group id"}
	}
	return ref, nil
}

// HeaderKind names the level a header token belongs to.
type HeaderKind string

const (
	HeaderProject  HeaderKind = "project"
	HeaderEnvFile  HeaderKind = "env"
	HeaderCategory HeaderKind = "cat"
)

// HeaderToken builds the token for a header item, e.g. "label-project-p1".
// Header tokens only need to be recognisable, not decodable.
func HeaderToken(kind HeaderKind, parts ...string) string {
	return LabelPrefix + string(kind) + "-" + strings.Join(parts, "-")
}
