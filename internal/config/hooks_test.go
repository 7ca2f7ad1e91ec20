package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeHooks(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, HooksFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadHooks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content *string
		want    Hooks
		wantErr bool
	}{
		{name: "no file", want: Hooks{}},
		{name: "empty file", content: strPtr(""), want: Hooks{}},
		{
			name:    "both hooks",
			content: strPtr("[hooks]\ninstall = \"bun install\"\nstart = \"bun run serve\"\n"),
			want:    Hooks{Install: "bun install", Start: "bun run serve"},
		},
		{
			name:    "start only",
			content: strPtr("[hooks]\nstart = \"make dev\"\n"),
			want:    Hooks{Start: "make dev"},
		},
		{
			name:    "invalid",
			content: strPtr("[hooks\n"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tt.content != nil {
				writeHooks(t, dir, *tt.content)
			}

			got, err := LoadHooks(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadHooks() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadHooks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHooksIsZero(t *testing.T) {
	t.Parallel()

	if !(Hooks{}).IsZero() {
		t.Error("empty hooks should be zero")
	}
	if (Hooks{Start: "x"}).IsZero() {
		t.Error("hooks with start should not be zero")
	}
}

func TestInstallMarker(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if InstallCompleted(dir) {
		t.Fatal("fresh worktree reported install completed")
	}
	if err := MarkInstallCompleted(dir); err != nil {
		t.Fatalf("MarkInstallCompleted() error = %v", err)
	}
	if !InstallCompleted(dir) {
		t.Error("install not reported completed after marking")
	}
	if _, err := os.Stat(filepath.Join(dir, InstallMarker)); err != nil {
		t.Errorf("marker file missing: %v", err)
	}
}

func strPtr(s string) *string { return &s }
