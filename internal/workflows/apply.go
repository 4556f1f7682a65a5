package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/envtray/internal/audit"
	"github.com/PolarWolf314/envtray/internal/envfile"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
)

// ApplyGroupOptions configures the apply workflow.
type ApplyGroupOptions struct {
	ProjectID   string
	EnvFilePath string
	GroupID     string

	// GroupIDs selects more groups for the same write, at most one per
	// category. GroupID, when set, is applied first.
	GroupIDs []string

	// Source is recorded in the audit log ("cli" or "tray").
	Source string
}

// ApplyGroupResult describes the write.
type ApplyGroupResult struct {
	Project model.Project
	EnvFile model.EnvFile

	// Group is the first applied group, Groups all of them in order.
	Group  model.EnvGroup
	Groups []model.EnvGroup

	// Content is what was written to the env file.
	Content string
}

// ApplyGroup merges one or more configuration groups into their env file
// on disk in a single write.
//
// The env file is re-read before merging so edits made outside envtray
// are kept. A file that no longer exists is recreated from the group.
//
// Returns ErrProjectNotFound, ErrEnvFileNotFound or ErrGroupNotFound when a
// reference does not resolve, ErrInvalidGroup when no group is selected or
// two share a category, and a *persist.IOError when the file cannot
// be read or written.
func ApplyGroup(ctx context.Context, opts ApplyGroupOptions) (*ApplyGroupResult, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(opts.ProjectID)
	if err != nil {
		return nil, err
	}
	envFile, err := findEnvFile(project, opts.EnvFilePath)
	if err != nil {
		return nil, err
	}
	groups, err := selectGroups(envFile, opts)
	if err != nil {
		return nil, err
	}

	current, err := gateway.ReadTextFile(envFile.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		current = ""
	}

	merged := envfile.Merge(current, groups)
	if err := gateway.WriteTextFile(envFile.Path, merged); err != nil {
		return nil, err
	}

	envFile.Content = merged
	project.Touch(now())
	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("apply")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.EnvFile = envFile.Path
	entry.GroupID, entry.GroupName = groupLabels(groups)
	entry.Source = opts.Source
	audit.Log(entry)

	return &ApplyGroupResult{
		Project: *project,
		EnvFile: *envFile,
		Group:   groups[0],
		Groups:  groups,
		Content: merged,
	}, nil
}

// selectGroups resolves the requested groups. Uncategorised groups share
// one slot, like any other category.
func selectGroups(envFile *model.EnvFile, opts ApplyGroupOptions) ([]model.EnvGroup, error) {
	refs := opts.GroupIDs
	if opts.GroupID != "" {
		refs = append([]string{opts.GroupID}, refs...)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: no group selected", kerrors.ErrInvalidGroup)
	}

	byCategory := make(map[string]string, len(refs))
	groups := make([]model.EnvGroup, 0, len(refs))
	for _, ref := range refs {
		group, err := findGroup(envFile, ref)
		if err != nil {
			return nil, err
		}
		if other, taken := byCategory[group.Category]; taken {
			return nil, fmt.Errorf("%w: %q and %q are both in category %q",
				kerrors.ErrInvalidGroup, other, group.Name, categoryLabel(group.Category))
		}
		byCategory[group.Category] = group.Name
		groups = append(groups, *group)
	}
	return groups, nil
}

func categoryLabel(category string) string {
	if category == "" {
		return "uncategorised"
	}
	return category
}

// groupLabels joins ids and names for a single audit entry.
func groupLabels(groups []model.EnvGroup) (ids, names string) {
	idList := make([]string, len(groups))
	nameList := make([]string, len(groups))
	for i, g := range groups {
		idList[i] = g.ID
		nameList[i] = g.Name
	}
	return strings.Join(idList, ","), strings.Join(nameList, ", ")
}
