package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANVASYNC_DATA_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(dir, "sync.db"), cfg.Storage.BoltPath)
	assert.Equal(t, filepath.Join(dir, "canvas.db"), cfg.Storage.DSN)
	assert.Equal(t, 2*time.Second, cfg.Autosave.Delay)
	assert.Equal(t, 500*time.Millisecond, cfg.Remote.ItemDelay)
	assert.Equal(t, 2*time.Second, cfg.Remote.PageDelay)
	assert.Equal(t, "default", cfg.Workspace.ID)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvasync.yaml")
	yaml := `
data_dir: ` + dir + `
log:
  level: debug
  format: json
storage:
  driver: pgx
  dsn: postgres://canvas@localhost/canvas
autosave:
  delay: 750ms
workspace:
  id: marketing
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CANVASYNC_SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("CANVASYNC_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Переменные окружения перекрывают файл
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Address)
	assert.Equal(t, "pgx", cfg.Storage.Driver)
	assert.Equal(t, "postgres://canvas@localhost/canvas", cfg.Storage.DSN)
	assert.Equal(t, 750*time.Millisecond, cfg.Autosave.Delay)
	assert.Equal(t, "marketing", cfg.Workspace.ID)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:       LogConfig{Format: LogFormatText},
			Storage:   StorageConfig{Driver: "sqlite"},
			Workspace: WorkspaceConfig{ID: "ws"},
		}
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		valid  bool
	}{
		{name: "valid", modify: func(c *Config) {}, valid: true},
		{name: "unknown log format", modify: func(c *Config) { c.Log.Format = "xml" }},
		{name: "unknown driver", modify: func(c *Config) { c.Storage.Driver = "mysql" }},
		{name: "pgx without dsn", modify: func(c *Config) { c.Storage.Driver = "pgx" }},
		{name: "empty workspace", modify: func(c *Config) { c.Workspace.ID = "" }},
		{name: "negative delay", modify: func(c *Config) { c.Autosave.Delay = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			err := c.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestEnsureDataDir(t *testing.T) {
	c := Config{DataDir: filepath.Join(t.TempDir(), "nested", "data")}
	require.NoError(t, c.EnsureDataDir())

	info, err := os.Stat(c.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANVASYNC_DATA_DIR", dir)
	path := filepath.Join(dir, "canvasync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600))

	v := New()
	cfg, err := LoadWith(v, path)
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)

	levels := make(chan string, 8)
	require.True(t, Watch(v, func(c *Config, err error) {
		if err == nil {
			levels <- c.Log.Level
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case lvl := <-levels:
			if lvl == "debug" {
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}

func TestWatch_NoFile(t *testing.T) {
	t.Setenv("CANVASYNC_DATA_DIR", t.TempDir())
	t.Chdir(t.TempDir())

	v := New()
	_, err := LoadWith(v, "")
	require.NoError(t, err)
	assert.False(t, Watch(v, func(*Config, error) {}))
}
