package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	EnvKeyPath     = "SERVICE_ACCOUNT_KEY_PATH"
	EnvProjectID   = "FIREBASE_ADMIN_PROJECT_ID"
	EnvClientEmail = "FIREBASE_ADMIN_CLIENT_EMAIL"
	EnvPrivateKey  = "FIREBASE_ADMIN_PRIVATE_KEY"

	DefaultKeyPath = "serviceAccountKey.json"

	googleTokenURI = "https://oauth2.googleapis.com/token"
)

// ConfigurationError reports missing or unusable store credentials.
type ConfigurationError struct {
	Missing []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing Firebase Admin env vars: " + strings.Join(e.Missing, ", ")
	}
	return "invalid Firebase Admin credentials: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err carries a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// FirebaseConfig holds where service account material may come from.
type FirebaseConfig struct {
	KeyPath     string
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

// Credentials is service account JSON ready for the Google client libraries.
type Credentials struct {
	JSON      []byte
	ProjectID string
	// Source is the key file path, or "env".
	Source string
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri,omitempty"`
}

// ResolveCredentials prefers a key file at cfg.KeyPath (or the default path)
// and falls back to the three FIREBASE_ADMIN_* values.
func ResolveCredentials(cfg FirebaseConfig) (*Credentials, error) {
	path := strings.TrimSpace(cfg.KeyPath)
	if path == "" {
		path = DefaultKeyPath
	}

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return credentialsFromFile(path)
	}

	var missing []string
	if cfg.ProjectID == "" {
		missing = append(missing, EnvProjectID)
	}
	if cfg.ClientEmail == "" {
		missing = append(missing, EnvClientEmail)
	}
	if cfg.PrivateKey == "" {
		missing = append(missing, EnvPrivateKey)
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	sa := serviceAccount{
		Type:        "service_account",
		ProjectID:   cfg.ProjectID,
		ClientEmail: cfg.ClientEmail,
		PrivateKey:  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
		TokenURI:    googleTokenURI,
	}
	raw, err := json.Marshal(sa)
	if err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("failed to encode service account: %w", err)}
	}

	return &Credentials{JSON: raw, ProjectID: sa.ProjectID, Source: "env"}, nil
}

func credentialsFromFile(path string) (*Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("failed to parse %s: %w", path, err)}
	}

	return &Credentials{JSON: raw, ProjectID: sa.ProjectID, Source: path}, nil
}
