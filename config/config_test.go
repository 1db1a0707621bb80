package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefault(t *testing.T) {
	t.Setenv("SPA_TEST_KEY", "set")
	assert.Equal(t, "set", ConfigDefault("SPA_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", ConfigDefault("SPA_TEST_KEY_MISSING", "fallback"))
}
