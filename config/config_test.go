package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"TELEGRAM_TOKEN", "OVERLAY_LIMIT", "LOG_LEVEL", "RAW_WIDTH", "RAW_HEIGHT", "RAW_BIT_DEPTH", "RAW_PATTERN"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2000, cfg.OverlayLimit)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 1920, cfg.RawWidth)
	require.Equal(t, 1080, cfg.RawHeight)
	require.Equal(t, 10, cfg.RawBitDepth)
	require.Equal(t, "Mono", cfg.RawPattern)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("OVERLAY_LIMIT", "500")
	t.Setenv("RAW_PATTERN", "RGGB")
	t.Setenv("TELEGRAM_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 500, cfg.OverlayLimit)
	require.Equal(t, "RGGB", cfg.RawPattern)
	require.Equal(t, "token", cfg.TelegramToken)
}

func TestLoad_InvalidInt(t *testing.T) {
	t.Setenv("RAW_WIDTH", "wide")
	_, err := Load()
	require.Error(t, err)
}
