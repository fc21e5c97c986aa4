package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: every other key has its default
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, "ttt:session:", conf.Storage.KeyPrefix)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Second, conf.Timer.TickInterval)
		assert.Equal(t, "ttt_session", conf.Session.CookieName)
		assert.Equal(t, 720*time.Hour, conf.Session.TTL)
		assert.Equal(t, 30*time.Minute, conf.Session.IdleTimeout)
		assert.Equal(t, time.Minute, conf.Session.SweepInterval)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: redis\n")
		t.Setenv("STORAGE_DRIVER", "memory")

		conf := MustLoad(path)

		assert.Equal(t, StorageMemory, conf.Storage.Driver)
	})

	t.Run("Unknown storage driver panics", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: mongo\n")

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Idle timeout must be positive", func(t *testing.T) {
		path := writeConfig(t, "session:\n  idle-timeout: -1s\n")

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Postgres driver needs a dsn", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: postgres\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
