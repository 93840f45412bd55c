package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"LOG_LEVEL", "DASHBOARD_FIAT_WALLET_TYPES", "DASHBOARD_NET_WORTH_CATEGORIES",
		"DASHBOARD_MASK_BALANCES", "DASHBOARD_MASK_TOKEN", "DASHBOARD_FETCH_TIMEOUT", "DASHBOARD_FIXTURE",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "dashboard", cfg.Logging.ServiceName)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"primary", "savings"}, cfg.Dashboard.FiatWalletTypes)
	assert.Equal(t, []string{"fiat", "crypto", "investment", "credit"}, cfg.Dashboard.NetWorthCategories)
	assert.False(t, cfg.Dashboard.MaskBalances)
	assert.Equal(t, "••••••", cfg.Dashboard.MaskToken)
	assert.Equal(t, 10*time.Second, cfg.Dashboard.FetchTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_FIAT_WALLET_TYPES", " Primary, business ,,")
	t.Setenv("DASHBOARD_NET_WORTH_CATEGORIES", "fiat,crypto,investment")
	t.Setenv("DASHBOARD_MASK_BALANCES", "yes")
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "2s")
	t.Setenv("DASHBOARD_FIXTURE", "/tmp/accounts.json")

	cfg := FromEnv()
	assert.Equal(t, []string{"primary", "business"}, cfg.Dashboard.FiatWalletTypes)
	assert.Equal(t, []string{"fiat", "crypto", "investment"}, cfg.Dashboard.NetWorthCategories)
	assert.True(t, cfg.Dashboard.MaskBalances)
	assert.Equal(t, 2*time.Second, cfg.Dashboard.FetchTimeout)
	assert.Equal(t, "/tmp/accounts.json", cfg.Fixture.Path)
}

func TestLoadFile(t *testing.T) {
	// godotenv never overrides a variable that is present, even when empty.
	t.Setenv("DASHBOARD_MASK_TOKEN", "")
	require.NoError(t, os.Unsetenv("DASHBOARD_MASK_TOKEN"))
	path := filepath.Join(t.TempDir(), "dashboard.env")
	require.NoError(t, os.WriteFile(path, []byte("DASHBOARD_MASK_TOKEN=****\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "****", cfg.Dashboard.MaskToken)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Dashboard: DashboardConfig{MaskToken: " "}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHBOARD_FIAT_WALLET_TYPES")
	assert.Contains(t, err.Error(), "DASHBOARD_NET_WORTH_CATEGORIES")
	assert.Contains(t, err.Error(), "DASHBOARD_MASK_TOKEN")
	assert.Contains(t, err.Error(), "DASHBOARD_FETCH_TIMEOUT")
}
