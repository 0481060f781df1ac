package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/frn-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "frn.db", cfg.Server.DBPath)
	assert.Equal(t, 100, cfg.Server.HistoryLimit)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FRN_SERVER_PORT", "9999")
	t.Setenv("FRN_SERVER_DB_PATH", ":memory:")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Server.DBPath)
}
