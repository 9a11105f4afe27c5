package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "https://www.mercadobitcoin.net/api/", cfg.ExchangeConfig.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.ExchangeConfig.Timeout)
	assert.Equal(t, "trades", cfg.ExchangeConfig.DaySummaryPath)
	assert.Equal(t, 8080, cfg.HttpConfig.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_DotenvAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MB_DAY_SUMMARY_PATH=day-summary\nHTTP_PORT=9000\n"), 0o600))
	t.Setenv("MB_TIMEOUT", "3s")
	t.Setenv("HTTP_PORT", "9100")
	t.Cleanup(func() { _ = os.Unsetenv("MB_DAY_SUMMARY_PATH") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "day-summary", cfg.ExchangeConfig.DaySummaryPath)
	assert.Equal(t, 3*time.Second, cfg.ExchangeConfig.Timeout)
	assert.Equal(t, 9100, cfg.HttpConfig.Port)

	cc := cfg.ExchangeConfig.ClientConfig()
	require.NotNil(t, cc.Timeout)
	assert.Equal(t, 3*time.Second, *cc.Timeout)
	assert.Equal(t, "day-summary", cc.Paths.DaySummary)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("MB_TIMEOUT", "soon")
	_, err := LoadConfig("")
	assert.Error(t, err)
}
