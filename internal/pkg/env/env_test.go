package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvDefault(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("LEARNHUB_TEST_MISSING", "fallback"))
}

func TestGetEnvFromOS(t *testing.T) {
	t.Setenv("LEARNHUB_TEST_OS", "from-os")
	assert.Equal(t, "from-os", GetEnv("LEARNHUB_TEST_OS", "fallback"))
}

func TestGetEnvPrefersLoadedMap(t *testing.T) {
	t.Setenv("LEARNHUB_TEST_BOTH", "from-os")
	Env = map[string]string{"LEARNHUB_TEST_BOTH": "from-map"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, "from-map", GetEnv("LEARNHUB_TEST_BOTH", "fallback"))
}

func TestIsDev(t *testing.T) {
	Env = map[string]string{"APP_ENV": "dev"}
	t.Cleanup(func() { Env = nil })
	assert.True(t, IsDev())

	Env["APP_ENV"] = "prod"
	assert.False(t, IsDev())
}
