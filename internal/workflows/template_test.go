package workflows

import (
	"testing"

	"github.com/PolarWolf314/envtray/internal/audit"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCategoryTemplate(t *testing.T) {
	env := setupEnv(t)
	env.seed(t, seededProject(t.TempDir()))

	template, err := SaveCategoryTemplate(ctx, SaveTemplateOptions{
		ProjectID: "p1",
		EnvFile:   ".env",
		Name:      " database ",
		Keys:      []string{"DB_HOST", " DB_PORT ", "", "DB_HOST"},
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", template.ID)
	assert.Equal(t, "database", template.Name)
	assert.Equal(t, []string{"DB_HOST", "DB_PORT"}, template.Keys)

	updated, err := SaveCategoryTemplate(ctx, SaveTemplateOptions{
		ProjectID:   "p1",
		EnvFile:     ".env",
		TemplateID:  "database",
		Name:        "database",
		Description: "postgres",
		Keys:        []string{"DB_URL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", updated.ID)

	project := env.projects(t)[0]
	templates := project.EnvFiles[0].CategoryTemplates
	require.Len(t, templates, 1)
	assert.Equal(t, []string{"DB_URL"}, templates[0].Keys)
	assert.Equal(t, "postgres", templates[0].Description)
	assert.Equal(t, fixedNow, project.LastModified)

	entries, err := audit.ReadEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "template-add", entries[0].Operation)
	assert.Equal(t, "template-update", entries[1].Operation)
	assert.Equal(t, "database", entries[1].TemplateName)
}

func TestSaveCategoryTemplateValidation(t *testing.T) {
	env := setupEnv(t)
	env.seed(t, seededProject(t.TempDir()))

	_, err := SaveCategoryTemplate(ctx, SaveTemplateOptions{ProjectID: "p1", EnvFile: ".env", Name: " ", Keys: []string{"A"}})
	assert.ErrorIs(t, err, kerrors.ErrInvalidTemplate)

	_, err = SaveCategoryTemplate(ctx, SaveTemplateOptions{ProjectID: "p1", EnvFile: ".env", Name: "x", Keys: []string{" "}})
	assert.ErrorIs(t, err, kerrors.ErrInvalidTemplate)

	_, err = SaveCategoryTemplate(ctx, SaveTemplateOptions{ProjectID: "p1", EnvFile: ".env", TemplateID: "nope", Name: "x", Keys: []string{"A"}})
	assert.ErrorIs(t, err, kerrors.ErrTemplateNotFound)

	assert.Empty(t, env.projects(t)[0].EnvFiles[0].CategoryTemplates)
}

func TestCopyAndRemoveCategoryTemplate(t *testing.T) {
	env := setupEnv(t)
	project := seededProject(t.TempDir())
	project.EnvFiles[0].CategoryTemplates = []model.CategoryTemplate{
		{Name: "cache", Description: "redis", Keys: []string{"REDIS_URL"}},
	}
	env.seed(t, project)

	copied, err := CopyCategoryTemplate(ctx, TemplateRef{ProjectID: "p1", EnvFile: ".env", TemplateID: "cache"})
	require.NoError(t, err)
	assert.Equal(t, "cache copy", copied.Name)
	assert.Equal(t, "id-1", copied.ID)
	assert.Equal(t, []string{"REDIS_URL"}, copied.Keys)

	removed, err := RemoveCategoryTemplate(ctx, TemplateRef{ProjectID: "p1", EnvFile: ".env", TemplateID: "cache"})
	require.NoError(t, err)
	assert.Equal(t, "cache", removed.Name)

	templates, err := ListCategoryTemplates(ctx, "p1", ".env")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "cache copy", templates[0].Name)

	_, err = RemoveCategoryTemplate(ctx, TemplateRef{ProjectID: "p1", EnvFile: ".env", TemplateID: "cache"})
	assert.ErrorIs(t, err, kerrors.ErrTemplateNotFound)
}

func TestAddGroupStartsFromCategoryTemplate(t *testing.T) {
	env := setupEnv(t)
	project := seededProject(t.TempDir())
	project.EnvFiles[0].CategoryTemplates = []model.CategoryTemplate{
		{ID: "t1", Name: "database", Keys: []string{"DB_HOST", "DB_PORT"}},
	}
	env.seed(t, project)

	group, err := AddGroup(ctx, AddGroupOptions{
		ProjectID: "p1",
		EnvFile:   ".env",
		Name:      "Remote DB",
		Category:  "database",
		Variables: []model.EnvVariable{{Key: "DB_HOST", Value: "db.internal"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.EnvVariable{
		{Key: "DB_HOST", Value: "db.internal"},
		{Key: "DB_PORT", Value: ""},
	}, group.Variables)
}
