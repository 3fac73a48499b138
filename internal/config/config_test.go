package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrpending/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, int64(4), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(4*1024*1024), cfg.Upload.MaxFileSizeBytes())

	assert.Equal(t, "gemini", cfg.Parser.Provider)
	assert.Empty(t, cfg.Parser.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Parser.DefaultModel)
	assert.Equal(t, 120, cfg.Parser.TimeoutSecs)
	assert.Equal(t, 16384, cfg.Parser.MaxOutputTokens)

	assert.Equal(t, "https://wa.me", cfg.Share.WhatsAppBaseURL)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MRPENDING_PARSER_API_KEY", "secret-key")
	t.Setenv("MRPENDING_PARSER_DEFAULT_MODEL", "gemini-2.5-pro")
	t.Setenv("MRPENDING_UPLOAD_MAX_FILE_SIZE_MB", "8")
	t.Setenv("MRPENDING_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "secret-key", cfg.Parser.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Parser.DefaultModel)
	assert.Equal(t, int64(8), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(8*1024*1024), cfg.Upload.MaxFileSizeBytes())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PortFallbackFromPaaS(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MRPENDING_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPaaS(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MRPENDING_SERVER_PORT", ":7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_CORSOriginsParsed(t *testing.T) {
	t.Setenv("MRPENDING_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ,")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}
