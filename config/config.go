package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	autherror "github.com/patrykJ113/edicom-api/internal/errors"
)

const (
	DefaultEnv                   = "development"
	DefaultPort                  = "4000"
	DefaultAccessTokenExpiryMin  = 5
	DefaultRefreshTokenExpiryMin = 30 * 24 * 60
	DefaultCORSAllowOrigins      = "https://localhost:3000"
	DefaultLogLevel              = "info"

	configDir = "config"
)

type Config struct {
	Env                     string
	Port                    string
	DBURL                   string
	AccessTokenSecret       string
	RefreshTokenSecret      string
	AccessExpiryMin         int
	RefreshExpiryMin        int
	CORSAllowOrigins        string
	TLSCertFile             string
	TLSKeyFile              string
	LoginRevealUnknownEmail bool
	LogLevel                string

	// Warnings lists values that were present but unusable and were replaced
	// by their defaults. The caller logs them once its logger exists.
	Warnings []string
}

// source resolves keys from the process environment first, then from the
// env file selected by ENV.
type source struct {
	file     map[string]string
	warnings []string
}

// Load builds the configuration. Values set in the process environment win
// over config/.env.dev (ENV=development) or config/.env.prod (ENV=production).
// A missing required key yields an error wrapping ErrMissingConfig.
func Load() (*Config, error) {
	env := getEnv("ENV", DefaultEnv)

	src, err := newSource(envFile(env))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                     env,
		Port:                    src.get("PORT", DefaultPort),
		AccessExpiryMin:         src.getInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:        src.getInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		CORSAllowOrigins:        src.get("CORS_ALLOW_ORIGINS", DefaultCORSAllowOrigins),
		TLSCertFile:             src.get("TLS_CERT_FILE", ""),
		TLSKeyFile:              src.get("TLS_KEY_FILE", ""),
		LoginRevealUnknownEmail: src.getBool("LOGIN_REVEAL_UNKNOWN_EMAIL", false),
		LogLevel:                src.get("LOG_LEVEL", DefaultLogLevel),
	}
	cfg.Warnings = src.warnings

	required := []struct {
		key string
		dst *string
	}{
		{"DB_URL", &cfg.DBURL},
		{"ACCESS_TOKEN_SECRET", &cfg.AccessTokenSecret},
		{"REFRESH_TOKEN_SECRET", &cfg.RefreshTokenSecret},
	}
	for _, r := range required {
		v := src.get(r.key, "")
		if v == "" {
			return nil, fmt.Errorf("%w: %s", autherror.ErrMissingConfig, r.key)
		}
		*r.dst = v
	}

	return cfg, nil
}

// MustLoad is Load for process startup: it exits on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *Config) RefreshTokenExpiry() time.Duration {
	return time.Duration(c.RefreshExpiryMin) * time.Minute
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

func envFile(env string) string {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}
	return filepath.Join(configDir, name)
}

func newSource(path string) (*source, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &source{file: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &source{file: values}, nil
}

func (s *source) get(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := strings.TrimSpace(s.file[key]); value != "" {
		return value
	}
	return defaultVal
}

func (s *source) getInt(key string, defaultVal int) int {
	valStr := s.get(key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		s.warnings = append(s.warnings, fmt.Sprintf("invalid value for %s, using default %d", key, defaultVal))
		return defaultVal
	}
	return val
}

func (s *source) getBool(key string, defaultVal bool) bool {
	valStr := s.get(key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		s.warnings = append(s.warnings, fmt.Sprintf("invalid value for %s, using default %t", key, defaultVal))
		return defaultVal
	}
	return val
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
