package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fikriauliya/maestro-ai/internal/instance"
)

// RegistryConfig holds instance registry settings
type RegistryConfig struct {
	Path string `toml:"path"`
	Lock bool   `toml:"lock"` // flock around each load-mutate-save cycle
}

// Config holds the maestro configuration
type Config struct {
	Shell    string         `toml:"shell"`
	Editor   string         `toml:"editor"`
	Registry RegistryConfig `toml:"registry"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Registry: RegistryConfig{
			Path: instance.DefaultPath,
		},
	}
}

// EditorCommand returns the configured editor, else $VISUAL, else $EDITOR,
// else "hx".
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return "hx"
}

type configKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or defaults when none is
// attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the config file location: $MAESTRO_CONFIG if set, else
// ~/.config/maestro/config.toml.
func Path() (string, error) {
	if p := os.Getenv("MAESTRO_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "maestro", "config.toml"), nil
}

// Load reads the config file at Path().
// Returns Default() if file doesn't exist (no error)
// Returns Default() and an error if the file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		return cfg, applyEnvOverrides(&cfg)
	}
	return LoadFile(path)
}

// LoadFile reads config from path with the same semantics as Load.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fallback(fmt.Errorf("failed to read config file: %w", err))
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return fallback(fmt.Errorf("failed to parse config file: %w", err))
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return fallback(err)
	}

	if cfg.Registry.Path == "" {
		cfg.Registry.Path = instance.DefaultPath
	}
	if err := ValidatePath(cfg.Registry.Path, "registry.path"); err != nil {
		return fallback(err)
	}
	expanded, err := expandPath(cfg.Registry.Path)
	if err != nil {
		return fallback(fmt.Errorf("expand registry.path: %w", err))
	}
	cfg.Registry.Path = expanded

	return cfg, nil
}

// fallback returns defaults, still honoring valid environment overrides,
// alongside err.
func fallback(err error) (Config, error) {
	cfg := Default()
	_ = applyEnvOverrides(&cfg)
	return cfg, err
}

// applyEnvOverrides applies MAESTRO_* environment variables on top of the
// file settings. Invalid values leave cfg unchanged.
func applyEnvOverrides(cfg *Config) error {
	if p := os.Getenv("MAESTRO_REGISTRY"); p != "" {
		if err := ValidatePath(p, "MAESTRO_REGISTRY"); err != nil {
			return err
		}
		expanded, err := expandPath(p)
		if err != nil {
			return fmt.Errorf("expand MAESTRO_REGISTRY: %w", err)
		}
		cfg.Registry.Path = expanded
	}
	return nil
}

const defaultConfig = `# maestro configuration

# Shell started after switch, remove and merge.
# Defaults to $SHELL, then /bin/sh.
# shell = "/bin/zsh"

# Editor opened in the layout's editor pane.
# Defaults to $VISUAL, then $EDITOR, then "hx".
# editor = "hx"

[registry]
# Instance registry shared by all sessions.
# Must be an absolute path or start with ~
path = "/tmp/maestro-ai/instances.json"

# Serialize concurrent register/update/unregister calls with a file lock
# on "<path>.lock". Without it the last writer wins.
lock = false
`

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
