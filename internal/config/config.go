package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("missing Gemini API key (set GEMINI_API_KEY or TECHTOSPEAK_GEMINI_API_KEY)")

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// GeminiConfig holds settings for the generative model provider.
type GeminiConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string `mapstructure:"base_url"`
}

// Timeout returns the per-call HTTP timeout for the model client.
func (g *GeminiConfig) Timeout() time.Duration {
	if g.TimeoutSecs <= 0 {
		return 120 * time.Second
	}
	return time.Duration(g.TimeoutSecs) * time.Second
}

// UploadConfig holds limits and scratch space for uploaded files.
type UploadConfig struct {
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	TempDir       string `mapstructure:"temp_dir"`
}

// MaxBytes returns the upload size limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from a .env file (if present) and environment
// variables with the TECHTOSPEAK_ prefix.
func Load() (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TECHTOSPEAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// Gemini defaults
	v.SetDefault("gemini.provider", "gemini")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash-lite")
	v.SetDefault("gemini.timeout_secs", 120)
	v.SetDefault("gemini.base_url", "")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 20)
	v.SetDefault("upload.temp_dir", os.TempDir())

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "*")

	envBindings := map[string][]string{
		"server.port":             {"TECHTOSPEAK_SERVER_PORT"},
		"server.read_timeout":     {"TECHTOSPEAK_SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"TECHTOSPEAK_SERVER_WRITE_TIMEOUT"},
		"server.environment":      {"TECHTOSPEAK_SERVER_ENVIRONMENT"},
		"gemini.provider":         {"TECHTOSPEAK_GEMINI_PROVIDER"},
		"gemini.api_key":          {"TECHTOSPEAK_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"gemini.model":            {"TECHTOSPEAK_GEMINI_MODEL", "GEMINI_MODEL"},
		"gemini.timeout_secs":     {"TECHTOSPEAK_GEMINI_TIMEOUT_SECS"},
		"gemini.base_url":         {"TECHTOSPEAK_GEMINI_BASE_URL"},
		"upload.max_file_size_mb": {"TECHTOSPEAK_UPLOAD_MAX_FILE_SIZE_MB"},
		"upload.temp_dir":         {"TECHTOSPEAK_UPLOAD_TEMP_DIR"},
		"log.level":               {"TECHTOSPEAK_LOG_LEVEL"},
		"log.format":              {"TECHTOSPEAK_LOG_FORMAT"},
		"cors.allowed_origins":    {"TECHTOSPEAK_CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if TECHTOSPEAK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TECHTOSPEAK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Gemini = GeminiConfig{
		Provider:    v.GetString("gemini.provider"),
		APIKey:      strings.TrimSpace(v.GetString("gemini.api_key")),
		Model:       strings.TrimSpace(v.GetString("gemini.model")),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
		BaseURL:     v.GetString("gemini.base_url"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		TempDir:       v.GetString("upload.temp_dir"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	if cfg.Gemini.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}
