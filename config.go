package fbarcalc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigVersion is the current config file schema version.
const ConfigVersion = 1

// Config is the persisted application configuration.
type Config struct {
	Version              int    `toml:"version"`
	DefaultInputCurrency string `toml:"default_input_currency,omitempty"`
	FcaAPIKey            string `toml:"fca_api_key,omitempty"`
}

// ConfigPath returns the override verbatim when given, otherwise the default
// location under the per-user config directory.
func ConfigPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config directory: %w", err)
	}
	return filepath.Join(dir, "fbarcalc", "config.toml"), nil
}

// LoadConfig reads the config file at path. A missing file is reported as
// ErrConfigMissing, a malformed one as ErrConfigParse. An absent version
// field defaults to the current schema version; the currency code and the
// API key are read verbatim, without validation.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Version == 0 {
		cfg.Version = ConfigVersion
	}
	return cfg, nil
}

// MergeCredential applies the credential-prompt rule: an empty submission
// keeps the previously stored credential, anything else replaces it.
func MergeCredential(current, entered string) string {
	if entered == "" {
		return current
	}
	return entered
}

// SaveConfig writes cfg to path, fully replacing any previous content. The
// parent directory is created when needed, and the file is written with
// owner-only read/write permissions.
func SaveConfig(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = ConfigVersion
	}
	content, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot serialize config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." && dir != ".." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("cannot write config file %s: %w", path, err)
	}
	// WriteFile only applies the mode on creation; rewrites of a
	// pre-existing file must end up owner-only too.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("cannot restrict config file %s: %w", path, err)
	}
	return nil
}
