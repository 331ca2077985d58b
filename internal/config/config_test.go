package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_CHECK", "1")
	for _, key := range []string{"APP_ENV", "HTTP_PORT", "LOG_LEVEL", "REDIS_ADDR", "REDIS_DB", "REDIS_CHANNEL", "REPORT_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, LocalEnv, cfg.AppEnv)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "fila:eventos", cfg.Redis.Channel)
	assert.Equal(t, "0 * * * * *", cfg.ReportSchedule)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENV_CHECK", "1")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REPORT_SCHEDULE", ReportOff)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProductionEnv, cfg.AppEnv)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.Database)
	assert.Equal(t, ReportOff, cfg.ReportSchedule)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("ENV_CHECK", "1")

	t.Setenv("HTTP_PORT", "eighty")
	_, err := Load()
	assert.ErrorContains(t, err, "HTTP_PORT")

	t.Setenv("HTTP_PORT", "")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load()
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_PORT=7001\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("ENV_CHECK", "")
	t.Setenv("HTTP_PORT", "")
	os.Unsetenv("HTTP_PORT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.HTTP.Port)
}
