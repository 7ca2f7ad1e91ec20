package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/config"
	"github.com/fikriauliya/maestro-ai/internal/instance"
	"github.com/fikriauliya/maestro-ai/internal/output"
)

// testEnv holds a config with a registry in a temp directory and captures
// stdout.
type testEnv struct {
	cfg    *config.Config
	stdout bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Default()
	cfg.Registry.Path = filepath.Join(t.TempDir(), "maestro-ai", "instances.json")
	return &testEnv{cfg: &cfg}
}

func (e *testEnv) ctx() context.Context {
	ctx := config.WithConfig(context.Background(), e.cfg)
	return output.WithPrinter(ctx, &e.stdout)
}

// run executes a freshly built command with args and stdin.
func (e *testEnv) run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&e.stdout)
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(e.ctx())
}

func (e *testEnv) instances() []instance.Instance {
	return instance.NewStore(e.cfg.Registry.Path).Load()
}

func TestRegisterCmd(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(PaneIDEnv, "7")

	if err := env.run(t, newRegisterCmd(), `{"cwd": "/src/app.feature"}`); err != nil {
		t.Fatalf("register: %v", err)
	}

	want := []instance.Instance{{PaneID: 7, Folder: "app.feature", Status: instance.Running}}
	got := env.instances()
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("instances = %+v, want %+v", got, want)
	}
}

func TestRegisterCmd_FallsBackToWorkingDir(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(PaneIDEnv, "3")
	dir := filepath.Join(t.TempDir(), "project")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if err := env.run(t, newRegisterCmd(), ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	got := env.instances()
	if len(got) != 1 || got[0].Folder != "project" {
		t.Errorf("instances = %+v, want folder %q", got, "project")
	}
}

func TestRegisterCmd_ReplacesPane(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(PaneIDEnv, "7")

	for _, cwd := range []string{"/src/a", "/src/b"} {
		if err := env.run(t, newRegisterCmd(), `{"cwd": "`+cwd+`"}`); err != nil {
			t.Fatalf("register %s: %v", cwd, err)
		}
	}

	got := env.instances()
	if len(got) != 1 || got[0].Folder != "b" {
		t.Errorf("instances = %+v, want single entry for b", got)
	}
}

func TestInstanceCmds_RequirePaneID(t *testing.T) {
	tests := []struct {
		name string
		cmd  func() *cobra.Command
		args []string
	}{
		{"register", newRegisterCmd, nil},
		{"update", newUpdateCmd, []string{"waiting"}},
		{"unregister", newUnregisterCmd, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			t.Setenv(PaneIDEnv, "not-a-pane")

			err := env.run(t, tt.cmd(), "", tt.args...)
			if err == nil || err.Error() != "ZELLIJ_PANE_ID not set" {
				t.Errorf("error = %v, want %q", err, "ZELLIJ_PANE_ID not set")
			}
			if got := env.instances(); len(got) != 0 {
				t.Errorf("instances = %+v, want none", got)
			}
		})
	}
}

func TestUpdateCmd(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(PaneIDEnv, "7")

	if err := env.run(t, newRegisterCmd(), `{"cwd": "/src/app"}`); err != nil {
		t.Fatal(err)
	}
	if err := env.run(t, newUpdateCmd(), `{"hook_event_name": "Stop"}`, "WAITING"); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := env.instances()
	if len(got) != 1 || got[0].Status != instance.Waiting {
		t.Errorf("instances = %+v, want waiting", got)
	}
}

func TestUpdateCmd_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(PaneIDEnv, "7")

	err := env.run(t, newUpdateCmd(), "", "idle")
	want := "invalid status: idle. Use 'running' or 'waiting'"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestUnregisterCmd(t *testing.T) {
	env := newTestEnv(t)

	for _, id := range []string{"1", "2"} {
		t.Setenv(PaneIDEnv, id)
		if err := env.run(t, newRegisterCmd(), `{"cwd": "/src/p`+id+`"}`); err != nil {
			t.Fatal(err)
		}
	}

	t.Setenv(PaneIDEnv, "1")
	for range 2 {
		if err := env.run(t, newUnregisterCmd(), ""); err != nil {
			t.Fatalf("unregister: %v", err)
		}
	}

	got := env.instances()
	if len(got) != 1 || got[0].PaneID != 2 {
		t.Errorf("instances = %+v, want only pane 2", got)
	}
}

func TestListCmd(t *testing.T) {
	env := newTestEnv(t)
	store := instance.NewStore(env.cfg.Registry.Path)
	if err := store.Register(1, "app"); err != nil {
		t.Fatal(err)
	}
	if err := store.Register(2, "app.feature"); err != nil {
		t.Fatal(err)
	}
	if err := store.UpdateStatus(2, instance.Waiting); err != nil {
		t.Fatal(err)
	}

	if err := env.run(t, newListCmd(), ""); err != nil {
		t.Fatalf("list: %v", err)
	}

	want := "⚡ app (pane 1)\n⏳ app.feature (pane 2)\n"
	if got := env.stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestListCmd_Empty(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run(t, newListCmd(), ""); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := env.stdout.String(); got != "No instances registered\n" {
		t.Errorf("output = %q", got)
	}
}

func TestListCmd_JSON(t *testing.T) {
	env := newTestEnv(t)
	if err := instance.NewStore(env.cfg.Registry.Path).Register(9, "app"); err != nil {
		t.Fatal(err)
	}

	if err := env.run(t, newListCmd(), "", "--json"); err != nil {
		t.Fatalf("list --json: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(env.stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", env.stdout.String(), err)
	}
	if got["version"] != version || got["build"] != buildType() {
		t.Errorf("version fields = %v/%v", got["version"], got["build"])
	}
	instances, ok := got["instances"].([]any)
	if !ok || len(instances) != 1 {
		t.Fatalf("instances = %v", got["instances"])
	}
	first := instances[0].(map[string]any)
	if first["pane_id"] != float64(9) || first["folder"] != "app" || first["status"] != "running" {
		t.Errorf("instance = %v", first)
	}
}

func TestListCmd_JSONEmpty(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run(t, newListCmd(), "", "--json"); err != nil {
		t.Fatalf("list --json: %v", err)
	}
	if !strings.Contains(env.stdout.String(), `"instances":[]`) {
		t.Errorf("output = %q, want empty instances array", env.stdout.String())
	}
}
