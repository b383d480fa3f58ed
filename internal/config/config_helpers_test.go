package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GET_ENV", "value")
	assert.Equal(t, "value", getEnv("TEST_GET_ENV", "fallback"))
	assert.Equal(t, "fallback", getEnv("TEST_GET_ENV_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT_OK", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, getEnvAsInt("TEST_INT_OK", 7))
	assert.Equal(t, 7, getEnvAsInt("TEST_INT_BAD", 7))
	assert.Equal(t, 7, getEnvAsInt("TEST_INT_MISSING", 7))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DUR_OK", "90s")
	t.Setenv("TEST_DUR_BAD", "ninety")

	assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DUR_OK", time.Minute))
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DUR_BAD", time.Minute))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", "a,b , c,,")
	t.Setenv("TEST_SLICE_EMPTY", "")

	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsSlice("TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, getEnvAsSlice("TEST_SLICE_EMPTY", []string{"x"}))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_TRUE", "true")
	t.Setenv("TEST_BOOL_ONE", "1")
	t.Setenv("TEST_BOOL_BAD", "yes please")

	assert.True(t, getEnvAsBool("TEST_BOOL_TRUE", false))
	assert.True(t, getEnvAsBool("TEST_BOOL_ONE", false))
	assert.True(t, getEnvAsBool("TEST_BOOL_BAD", true))
	assert.False(t, getEnvAsBool("TEST_BOOL_MISSING", false))
}
