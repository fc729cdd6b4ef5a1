package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHome(t *testing.T) {
	for _, path := range []string{
		"/learning/",
		"/learning",
		"/learning//",
		"/",
		"/learning/?utm_source=newsletter",
	} {
		assert.Equal(t, ViewHome, Resolve(path), "path %q", path)
	}
}

func TestResolveStartLearning(t *testing.T) {
	for _, path := range []string{
		"/learning/start-learning",
		"/learning/start-learning/",
		"/start-learning",
		"/learning/start-learning?ref=home",
		"/learning/start-learning#prerequisites",
	} {
		assert.Equal(t, ViewStartLearning, Resolve(path), "path %q", path)
	}
}

func TestResolveNotFound(t *testing.T) {
	for _, path := range []string{
		"",
		"/unknown-path",
		"/learning/unknown-path",
		"/learning/Start-Learning", // matching is case-sensitive
		"/START-LEARNING",
		"/learningfoo",
		"/learning/start-learning/extra",
		"/learning/guides/javascript/event-loop.md",
	} {
		assert.Equal(t, ViewNotFound, Resolve(path), "path %q", path)
	}
}

func TestResolveIsPure(t *testing.T) {
	first := Resolve("/learning/start-learning")
	second := Resolve("/learning/start-learning")
	assert.Equal(t, first, second)

	// Resolving other paths in between must not influence the result.
	Resolve("/unknown")
	Resolve("")
	assert.Equal(t, first, Resolve("/learning/start-learning"))
}

func TestTableIsImmutable(t *testing.T) {
	table := Table()
	assert.Len(t, table, 2)
	assert.Equal(t, ViewHome, table[0].View)
	assert.Equal(t, ViewStartLearning, table[1].View)

	// Mutating the returned slice must not affect resolution.
	table[0].Pattern = "/hijacked"
	assert.Equal(t, ViewHome, Resolve("/"))
	assert.Equal(t, "/", Table()[0].Pattern)
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "home", ViewHome.String())
	assert.Equal(t, "start-learning", ViewStartLearning.String())
	assert.Equal(t, "not-found", ViewNotFound.String())
	assert.Equal(t, "not-found", View(42).String())
}
