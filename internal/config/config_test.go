package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	_, err := Load()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "brainstorm.db", cfg.DBPath)
	require.NotEmpty(t, cfg.HFEndpoint)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/board.db")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/tmp/board.db", cfg.DBPath)
}
