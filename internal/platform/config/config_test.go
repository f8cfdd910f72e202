package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "1100", cfg.ARAccountCode)
	assert.Equal(t, "4000", cfg.RevenueAccountCode)
	assert.Equal(t, "2000", cfg.APAccountCode)
	assert.Equal(t, "1000", cfg.CashAccountCode)
	assert.Equal(t, "60-M", cfg.PostingRateLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AR_ACCOUNT_CODE", "1200")
	t.Setenv("POSTING_RATE_LIMIT", "10-S")
	t.Setenv("ENABLE_DB_CHECK", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "1200", cfg.ARAccountCode)
	assert.Equal(t, "10-S", cfg.PostingRateLimit)
	assert.True(t, cfg.EnableDBCheck)
}
