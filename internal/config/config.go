package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"plaindoc/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
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

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig is the per-call snapshot of upload settings. Exactly one
// provider is active per call; empty string fields mean "unset".
type UploadConfig struct {
	Provider domain.Provider `mapstructure:"provider"`
	R2       R2Config        `mapstructure:"r2"`
	OSS      OSSConfig       `mapstructure:"oss"`
}

// R2Config holds credentials for the S3-compatible backend. All fields are
// required except PublicBaseURL.
type R2Config struct {
	AccountID       string `mapstructure:"account_id"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Bucket          string `mapstructure:"bucket"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
}

// OSSConfig holds credentials for the signature-based backend. AccessKeyID,
// AccessKeySecret and Bucket are required, plus at least one of Endpoint or
// Region.
type OSSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	Bucket          string `mapstructure:"bucket"`
	Endpoint        string `mapstructure:"endpoint"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
}

// Normalize coerces an arbitrary untyped settings record into an
// UploadConfig. Unknown or missing fields become empty strings; an unset or
// legacy provider selector maps to the S3-compatible provider.
func Normalize(raw map[string]any) *UploadConfig {
	cfg := &UploadConfig{Provider: domain.ProviderR2}
	if raw == nil {
		return cfg
	}

	if p, ok := raw["provider"].(string); ok {
		if domain.Provider(strings.ToLower(strings.TrimSpace(p))) == domain.ProviderOSS {
			cfg.Provider = domain.ProviderOSS
		}
	}

	if m, ok := raw["r2"].(map[string]any); ok {
		cfg.R2 = R2Config{
			AccountID:       stringField(m, "account_id"),
			AccessKeyID:     stringField(m, "access_key_id"),
			SecretAccessKey: stringField(m, "secret_access_key"),
			Bucket:          stringField(m, "bucket"),
			PublicBaseURL:   stringField(m, "public_base_url"),
		}
	}
	if m, ok := raw["oss"].(map[string]any); ok {
		cfg.OSS = OSSConfig{
			Region:          stringField(m, "region"),
			AccessKeyID:     stringField(m, "access_key_id"),
			AccessKeySecret: stringField(m, "access_key_secret"),
			Bucket:          stringField(m, "bucket"),
			Endpoint:        stringField(m, "endpoint"),
			PublicBaseURL:   stringField(m, "public_base_url"),
		}
	}
	return cfg
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Load reads configuration from environment variables with the PLAINDOC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PLAINDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.provider", string(domain.ProviderR2))
	v.SetDefault("upload.r2.account_id", "")
	v.SetDefault("upload.r2.access_key_id", "")
	v.SetDefault("upload.r2.secret_access_key", "")
	v.SetDefault("upload.r2.bucket", "")
	v.SetDefault("upload.r2.public_base_url", "")
	v.SetDefault("upload.oss.region", "")
	v.SetDefault("upload.oss.access_key_id", "")
	v.SetDefault("upload.oss.access_key_secret", "")
	v.SetDefault("upload.oss.bucket", "")
	v.SetDefault("upload.oss.endpoint", "")
	v.SetDefault("upload.oss.public_base_url", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "PLAINDOC_SERVER_PORT",
		"server.read_timeout":          "PLAINDOC_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "PLAINDOC_SERVER_WRITE_TIMEOUT",
		"server.environment":           "PLAINDOC_SERVER_ENVIRONMENT",
		"upload.provider":              "PLAINDOC_UPLOAD_PROVIDER",
		"upload.r2.account_id":         "PLAINDOC_UPLOAD_R2_ACCOUNT_ID",
		"upload.r2.access_key_id":      "PLAINDOC_UPLOAD_R2_ACCESS_KEY_ID",
		"upload.r2.secret_access_key":  "PLAINDOC_UPLOAD_R2_SECRET_ACCESS_KEY",
		"upload.r2.bucket":             "PLAINDOC_UPLOAD_R2_BUCKET",
		"upload.r2.public_base_url":    "PLAINDOC_UPLOAD_R2_PUBLIC_BASE_URL",
		"upload.oss.region":            "PLAINDOC_UPLOAD_OSS_REGION",
		"upload.oss.access_key_id":     "PLAINDOC_UPLOAD_OSS_ACCESS_KEY_ID",
		"upload.oss.access_key_secret": "PLAINDOC_UPLOAD_OSS_ACCESS_KEY_SECRET",
		"upload.oss.bucket":            "PLAINDOC_UPLOAD_OSS_BUCKET",
		"upload.oss.endpoint":          "PLAINDOC_UPLOAD_OSS_ENDPOINT",
		"upload.oss.public_base_url":   "PLAINDOC_UPLOAD_OSS_PUBLIC_BASE_URL",
		"log.level":                    "PLAINDOC_LOG_LEVEL",
		"log.format":                   "PLAINDOC_LOG_FORMAT",
		"cors.allowed_origins":         "PLAINDOC_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PLAINDOC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PLAINDOC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	provider := domain.Provider(strings.ToLower(v.GetString("upload.provider")))
	if provider != domain.ProviderOSS {
		provider = domain.ProviderR2
	}
	cfg.Upload = UploadConfig{
		Provider: provider,
		R2: R2Config{
			AccountID:       v.GetString("upload.r2.account_id"),
			AccessKeyID:     v.GetString("upload.r2.access_key_id"),
			SecretAccessKey: v.GetString("upload.r2.secret_access_key"),
			Bucket:          v.GetString("upload.r2.bucket"),
			PublicBaseURL:   v.GetString("upload.r2.public_base_url"),
		},
		OSS: OSSConfig{
			Region:          v.GetString("upload.oss.region"),
			AccessKeyID:     v.GetString("upload.oss.access_key_id"),
			AccessKeySecret: v.GetString("upload.oss.access_key_secret"),
			Bucket:          v.GetString("upload.oss.bucket"),
			Endpoint:        v.GetString("upload.oss.endpoint"),
			PublicBaseURL:   v.GetString("upload.oss.public_base_url"),
		},
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
