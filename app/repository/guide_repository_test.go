package repository

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContentFS() fstest.MapFS {
	return fstest.MapFS{
		"javascript/event-loop.md":  &fstest.MapFile{Data: []byte("# Event loop\n")},
		"javascript/async-await.md": &fstest.MapFile{Data: []byte("# Async/await\n")},
		"react/hooks.md":            &fstest.MapFile{Data: []byte("# Hooks\n")},
		"tooling/npm-basics.md":     &fstest.MapFile{Data: []byte("# npm\n")},
		"tooling/notes.txt":         &fstest.MapFile{Data: []byte("not a guide")},
		"README.md":                 &fstest.MapFile{Data: []byte("top level, not catalogued")},
	}
}

func TestGuideRepositoryGetAll(t *testing.T) {
	repo := NewGuideRepository(testContentFS())

	guides, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, guides, 4)

	// Ordered by category, then slug; non-markdown and top-level files skipped.
	assert.Equal(t, "async-await", guides[0].Slug)
	assert.Equal(t, "event-loop", guides[1].Slug)
	assert.Equal(t, "hooks", guides[2].Slug)
	assert.Equal(t, "npm-basics", guides[3].Slug)

	assert.Equal(t, "javascript", guides[0].Category)
	assert.Equal(t, "Async Await", guides[0].Title)
	assert.Equal(t, "/learning/guides/javascript/async-await.md", guides[0].Path)
}

func TestGuideRepositoryGetByCategory(t *testing.T) {
	repo := NewGuideRepository(testContentFS())

	guides, err := repo.GetByCategory("javascript")
	require.NoError(t, err)
	require.Len(t, guides, 2)
	for _, g := range guides {
		assert.Equal(t, "javascript", g.Category)
	}

	none, err := repo.GetByCategory("missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGuideRepositoryGetBySlug(t *testing.T) {
	repo := NewGuideRepository(testContentFS())

	guide, err := repo.GetBySlug("hooks")
	require.NoError(t, err)
	assert.Equal(t, "react", guide.Category)
	assert.Equal(t, "Hooks", guide.Title)

	_, err = repo.GetBySlug("does-not-exist")
	assert.ErrorIs(t, err, ErrGuideNotFound)
}

func TestGuideRepositoryCategories(t *testing.T) {
	repo := NewGuideRepository(testContentFS())

	categories, err := repo.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"javascript", "react", "tooling"}, categories)
}

func TestGuideRepositoryCount(t *testing.T) {
	repo := NewGuideRepository(testContentFS())

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestGuideRepositoryEmptyCatalog(t *testing.T) {
	repo := NewGuideRepository(fstest.MapFS{})

	guides, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, guides)
}
