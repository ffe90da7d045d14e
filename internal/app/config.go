package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port         string
	DSN          string
	Storage      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	LogLevel  slog.Level
	LogFormat string

	AuthEnabled bool
	Issuer      string
	Audience    string
	JWKSURL     string

	// GuardAssignedDelete refuses to delete records that carry a customer.
	GuardAssignedDelete bool

	OTLPEndpoint string
	OTLPInsecure bool
	ServiceName  string
}

// LoadConfig reads the process environment, after merging a .env file from
// the working directory when one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:         envOr("PORT", "4040"),
		DSN:          os.Getenv("DB_CONN"),
		Storage:      envOr("STORAGE", StoragePostgres),
		LogFormat:    envOr("LOG_FORMAT", "text"),
		Issuer:       os.Getenv("AUTH_ISSUER"),
		Audience:     os.Getenv("AUTH_AUDIENCE"),
		JWKSURL:      os.Getenv("AUTH_JWKS_URL"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  envOr("OTEL_SERVICE_NAME", "ipam-ledger"),
	}

	var err error
	if cfg.ReadTimeout, err = envDuration("READ_TIMEOUT", 3*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = envDuration("WRITE_TIMEOUT", 3*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.AuthEnabled, err = envBool("AUTH_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.GuardAssignedDelete, err = envBool("IPAM_GUARD_ASSIGNED_DELETE", false); err != nil {
		return Config{}, err
	}
	if cfg.OTLPInsecure, err = envBool("OTEL_EXPORTER_OTLP_INSECURE", true); err != nil {
		return Config{}, err
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DSN == "" {
			return errors.New("missing required environment variable: DB_CONN")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}

	if c.AuthEnabled && c.Issuer == "" {
		return errors.New("AUTH_ISSUER is required when AUTH_ENABLED is set")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
