package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const defaultKeyPath = "serviceAccountKey.json"

const (
	BackendFirestore = "firestore"
	BackendSQL       = "sql"
)

// Config contains server configuration parameters.
type Config struct {
	AppEnv      string   `env:"APP_ENV" envDefault:"dev"`
	HTTPAddr    string   `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel    int      `env:"LOG_LEVEL" envDefault:"0"`
	BcryptCost  int      `env:"BCRYPT_COST" envDefault:"10"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	KeyPath     string   `env:"SERVICE_ACCOUNT_KEY_PATH"`
	DocStore    DocStore
	Firebase    Firebase `envPrefix:"FIREBASE_ADMIN_"`
}

// DocStore selects the document store backend.
type DocStore struct {
	Backend     string `env:"DOCSTORE_BACKEND" envDefault:"firestore"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"mentorportal.db"`
}

// Firebase holds the service account fallback used when no key file exists.
// Values are optional here and only checked when the store is first opened.
type Firebase struct {
	ProjectID   string `env:"PROJECT_ID"`
	ClientEmail string `env:"CLIENT_EMAIL"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.DocStore.Backend = strings.ToLower(strings.TrimSpace(cfg.DocStore.Backend))
	if strings.TrimSpace(cfg.KeyPath) == "" {
		cfg.KeyPath = defaultKeyPath
	}

	origins := cfg.CORSOrigins[:0]
	for _, o := range cfg.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSOrigins = origins

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.DocStore.Backend {
	case BackendFirestore, BackendSQL:
	default:
		return fmt.Errorf("DOCSTORE_BACKEND must be one of: %s, %s", BackendFirestore, BackendSQL)
	}
	if cfg.DocStore.Backend == BackendSQL && strings.TrimSpace(cfg.DocStore.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty for the %s backend", BackendSQL)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be within 4..31")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	return nil
}

// IsProdLike reports whether the app runs in a production environment.
func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}
