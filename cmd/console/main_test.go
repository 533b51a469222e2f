package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func consoleEnv(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LOGGER_OUTPUT_FILENAME", filepath.Join(t.TempDir(), "medicare.log"))
	t.Setenv("SESSION_FILE_DIR", t.TempDir())
}

func TestRun_UnknownSessionDriverExitsWithError(t *testing.T) {
	consoleEnv(t)
	t.Setenv("SESSION_DRIVER", "memcached")

	assert.Equal(t, 1, run())
}

func TestRun_UnknownTimezoneExitsWithError(t *testing.T) {
	consoleEnv(t)
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	assert.Equal(t, 1, run())
}

func TestRun_UnreachableRedisExitsWithError(t *testing.T) {
	consoleEnv(t)
	t.Setenv("SESSION_DRIVER", "redis")
	t.Setenv("REDIS_HOST", "127.0.0.1")
	t.Setenv("REDIS_PORT", "1")

	assert.Equal(t, 1, run())
}
