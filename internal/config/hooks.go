package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// HooksFileName is the per-worktree hook file, relative to the worktree root.
const HooksFileName = ".config/wt.toml"

// InstallMarker is created in the worktree root once the install hook ran.
const InstallMarker = ".maestro-installed"

// Hooks holds the commands run in a worktree's terminal pane.
type Hooks struct {
	Install string `toml:"install"` // once, after fresh creation
	Start   string `toml:"start"`   // every time the worktree is opened
}

// IsZero reports whether no hook is configured.
func (h Hooks) IsZero() bool {
	return h.Install == "" && h.Start == ""
}

type hooksFile struct {
	Hooks Hooks `toml:"hooks"`
}

// LoadHooks reads the hook file of the worktree at path.
// Returns zero Hooks (no error) if the file doesn't exist.
func LoadHooks(worktreePath string) (Hooks, error) {
	file := filepath.Join(worktreePath, HooksFileName)

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Hooks{}, nil
		}
		return Hooks{}, fmt.Errorf("failed to read hooks %s: %w", file, err)
	}

	var raw hooksFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Hooks{}, fmt.Errorf("failed to parse hooks %s: %w", file, err)
	}
	return raw.Hooks, nil
}

// InstallCompleted reports whether the install hook already ran in the
// worktree at path.
func InstallCompleted(worktreePath string) bool {
	_, err := os.Stat(filepath.Join(worktreePath, InstallMarker))
	return err == nil
}

// MarkInstallCompleted records that the install hook ran.
func MarkInstallCompleted(worktreePath string) error {
	return os.WriteFile(filepath.Join(worktreePath, InstallMarker), nil, 0o644)
}
