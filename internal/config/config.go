package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Upload UploadConfig
	Parser ParserConfig
	Share  ShareConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UploadConfig holds statement upload limits. The size ceiling exists because
// oracle transport fails unpredictably on larger payloads; the guard rejects
// before any bytes are read.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// ParserConfig holds extraction oracle settings. The API key is injected here
// rather than read from ambient process state inside the client.
type ParserConfig struct {
	Provider        string `mapstructure:"provider"`
	APIKey          string `mapstructure:"api_key"`
	DefaultModel    string `mapstructure:"default_model"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
}

// ShareConfig holds share-target settings for summary links.
type ShareConfig struct {
	WhatsAppBaseURL string `mapstructure:"whatsapp_base_url"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the MRPENDING_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MRPENDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 4)

	// Parser defaults
	v.SetDefault("parser.provider", "gemini")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gemini-2.5-flash")
	v.SetDefault("parser.timeout_secs", 120)
	v.SetDefault("parser.max_output_tokens", 16384)

	// Share defaults
	v.SetDefault("share.whatsapp_base_url", "https://wa.me")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "MRPENDING_SERVER_PORT",
		"server.read_timeout":      "MRPENDING_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "MRPENDING_SERVER_WRITE_TIMEOUT",
		"server.environment":       "MRPENDING_SERVER_ENVIRONMENT",
		"log.level":                "MRPENDING_LOG_LEVEL",
		"log.format":               "MRPENDING_LOG_FORMAT",
		"upload.max_file_size_mb":  "MRPENDING_UPLOAD_MAX_FILE_SIZE_MB",
		"parser.provider":          "MRPENDING_PARSER_PROVIDER",
		"parser.api_key":           "MRPENDING_PARSER_API_KEY",
		"parser.default_model":     "MRPENDING_PARSER_DEFAULT_MODEL",
		"parser.timeout_secs":      "MRPENDING_PARSER_TIMEOUT_SECS",
		"parser.max_output_tokens": "MRPENDING_PARSER_MAX_OUTPUT_TOKENS",
		"share.whatsapp_base_url":  "MRPENDING_SHARE_WHATSAPP_BASE_URL",
		"cors.allowed_origins":     "MRPENDING_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MRPENDING_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MRPENDING_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Parser = ParserConfig{
		Provider:        v.GetString("parser.provider"),
		APIKey:          v.GetString("parser.api_key"),
		DefaultModel:    v.GetString("parser.default_model"),
		TimeoutSecs:     v.GetInt("parser.timeout_secs"),
		MaxOutputTokens: v.GetInt("parser.max_output_tokens"),
	}
	cfg.Share = ShareConfig{
		WhatsAppBaseURL: v.GetString("share.whatsapp_base_url"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
