package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideValidate(t *testing.T) {
	guide := &Guide{
		Slug:     "event-loop",
		Title:    "Event Loop",
		Category: "javascript",
		Path:     "/learning/guides/javascript/event-loop.md",
	}
	require.NoError(t, guide.Validate())
}

func TestGuideValidateRejectsMissingFields(t *testing.T) {
	guide := &Guide{Slug: "event-loop"}
	assert.Error(t, guide.Validate())
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"event-loop", "Event Loop"},
		{"rest-vs-graphql", "REST vs GraphQL"},
		{"hooks", "Hooks"},
		{"npm-basics", "npm Basics"},
		{"typescript-generics", "TypeScript Generics"},
		{"async-await", "Async Await"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleFromSlug(tt.slug), "slug %q", tt.slug)
	}
}
