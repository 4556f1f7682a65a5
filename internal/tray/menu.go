package tray

import (
	"fmt"
	"strings"
)

// NodeKind distinguishes the three kinds of menu entries.
type NodeKind int

const (
	NodeHeader NodeKind = iota
	NodeAction
	NodeSeparator
)

func (k NodeKind) String() string {
	switch k {
	case NodeHeader:
		return "header"
	case NodeAction:
		return "action"
	case NodeSeparator:
		return "separator"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Label decorations and the Quit item.
const (
	ProjectIcon  = "📁 "
	EnvFileIcon  = "🧾 "
	CategoryIcon = "📂 "
	GroupIcon    = "⚙️ "
	QuitLabel    = "Quit"
)

// MenuNode is one entry of a flat tray menu. Separators have no label or
// token.
type MenuNode struct {
	Kind  NodeKind
	Label string
	Token string
}

func Header(label, token string) MenuNode {
	return MenuNode{Kind: NodeHeader, Label: label, Token: token}
}

func Action(label, token string) MenuNode {
	return MenuNode{Kind: NodeAction, Label: label, Token: token}
}

func Separator() MenuNode {
	return MenuNode{Kind: NodeSeparator}
}

// Menu is an ordered menu description.
type Menu struct {
	Nodes []MenuNode
}

// Actions returns the actionable nodes in menu order.
func (m Menu) Actions() []MenuNode {
	var actions []MenuNode
	for _, n := range m.Nodes {
		if n.Kind == NodeAction {
			actions = append(actions, n)
		}
	}
	return actions
}

// EncodeFailure records a group that could not be given a token.
type EncodeFailure struct {
	ProjectID   string
	EnvFilePath string
	GroupID     string
	GroupName   string
	Err         error
}

// BuildError lists every group left out of a menu.
type BuildError struct {
	Failures []EncodeFailure
}

func (e *BuildError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, fmt.Sprintf("group %q in %s: %v", f.GroupName, f.EnvFilePath, f.Err))
	}
	return fmt.Sprintf("%d group(s) could not be added to the tray menu: %s", len(e.Failures), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual encode errors to errors.Is and errors.As.
func (e *BuildError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// BuildMenu flattens projects depth-first in input order. A group whose ids
// cannot be encoded is left out and reported in the returned *BuildError; the
// Menu still holds every other node, including the trailing Quit item.
func BuildMenu(projects []Project) (Menu, error) {
	var (
		nodes    []MenuNode
		failures []EncodeFailure
	)

	for _, project := range projects {
		nodes = append(nodes, Header(ProjectIcon+project.Name, HeaderToken(HeaderProject, project.ID)))

		for _, env := range project.EnvFiles {
			nodes = append(nodes, Header(EnvFileIcon+env.Name, HeaderToken(HeaderEnvFile, project.ID, env.Name)))

			for _, category := range env.Categories {
				nodes = append(nodes, Header(CategoryIcon+category.Name, HeaderToken(HeaderCategory, project.ID, env.Name, category.Name)))

				for _, group := range category.Groups {
					token, err := EncodeAction(group.ProjectID, group.EnvFilePath, group.ID)
					if err != nil {
						failures = append(failures, EncodeFailure{
							ProjectID:   group.ProjectID,
							EnvFilePath: group.EnvFilePath,
							GroupID:     group.ID,
							GroupName:   group.Name,
							Err:         err,
						})
						continue
					}
					nodes = append(nodes, Action(GroupIcon+group.Name, token))
				}
			}
		}

		nodes = append(nodes, Separator())
	}

	nodes = append(nodes, Action(QuitLabel, QuitToken))

	menu := Menu{Nodes: nodes}
	if len(failures) > 0 {
		return menu, &BuildError{Failures: failures}
	}
	return menu, nil
}
