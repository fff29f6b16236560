package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, ":8080", c.Listen)
	assert.Equal(t, "/", c.URLPrefix)
	assert.Equal(t, 10*time.Second, c.ReadTimeout)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 1583, c.MinYear)
	assert.Equal(t, 4099, c.MaxYear)
	assert.Empty(t, c.MetricsPath)
	assert.NoError(t, c.Validate())
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
listen: "127.0.0.1:9000"
url_prefix: /holidays/
read_timeout: 5s
write_timeout: 1m
metrics_path: /metrics
log_level: debug
min_year: 1900
max_year: 2200
cache:
  max_entries: 500
`)
	c, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", c.Listen)
	assert.Equal(t, "/holidays/", c.URLPrefix)
	assert.Equal(t, 5*time.Second, c.ReadTimeout)
	assert.Equal(t, time.Minute, c.WriteTimeout)
	assert.Equal(t, 120*time.Second, c.IdleTimeout)
	assert.Equal(t, "/metrics", c.MetricsPath)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 1900, c.MinYear)
	assert.Equal(t, 2200, c.MaxYear)
	assert.Equal(t, 500, c.Cache.MaxEntries)
	assert.False(t, c.Cache.Disabled)
}

func TestParseConfig_Empty(t *testing.T) {
	c, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "listen: [unclosed"},
		{"bad duration", "read_timeout: soon"},
		{"inverted years", "min_year: 2100\nmax_year: 2000"},
		{"negative cache", "cache:\n  max_entries: -1"},
		{"relative metrics path", "metrics_path: metrics"},
		{"unknown log level", "log_level: verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9090\"\ncache:\n  disabled: true\n"), 0o600))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Listen)
	assert.True(t, c.Cache.Disabled)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
