package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/tasklist/internal/exitcode"
	"github.com/ytget/tasklist/internal/model"
	"github.com/ytget/tasklist/internal/tui"
	"github.com/ytget/tasklist/internal/ui"
)

// testEnv points every invocation at a private config and database
type testEnv struct {
	t          *testing.T
	configPath string
	dataPath   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return &testEnv{
		t:          t,
		configPath: filepath.Join(dir, "config.yaml"),
		dataPath:   filepath.Join(dir, "tasks.db"),
	}
}

func (e *testEnv) run(args ...string) (string, string, int) {
	e.t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--config", e.configPath, "--data", e.dataPath}, args...)
	code := Run(context.Background(), "1.2.3", full, &out, &errOut)
	return out.String(), errOut.String(), code
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, errOut, code := e.run(args...)
	if code != exitcode.Success {
		e.t.Fatalf("%v: exit %d: %s", args, code, errOut)
	}
	return out
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd("dev")

	expected := []string{"gui", "tui", "add", "list", "toggle", "edit", "rm", "stats", "config", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected subcommand %q", name)
		}
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	if out := env.mustRun("version"); out != "tasklist 1.2.3\n" {
		t.Errorf("Unexpected version output %q", out)
	}
	if out := env.mustRun("--version"); out != "1.2.3\n" {
		t.Errorf("Unexpected --version output %q", out)
	}
}

func TestAddAndList(t *testing.T) {
	env := newTestEnv(t)

	if out := env.mustRun("add", "Buy", "milk"); out != "Added 1: Buy milk\n" {
		t.Errorf("Unexpected add output %q", out)
	}
	if out := env.mustRun("add", "  Walk dog  "); out != "Added 2: Walk dog\n" {
		t.Errorf("Unexpected add output %q", out)
	}

	out := env.mustRun("list")
	for _, want := range []string{"Buy milk", "Walk dog", "[ ]", "Total: 2", "Completed: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in list output:\n%s", want, out)
		}
	}
	if strings.Index(out, "Buy milk") > strings.Index(out, "Walk dog") {
		t.Errorf("Expected insertion order in list output:\n%s", out)
	}
}

func TestAdd_EmptyText(t *testing.T) {
	env := newTestEnv(t)

	_, errOut, code := env.run("add", "   ")
	if code != exitcode.UserError {
		t.Errorf("Expected exit %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(errOut, "error: task text is empty") {
		t.Errorf("Unexpected stderr %q", errOut)
	}
}

func TestToggleAndFilters(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "first")
	env.mustRun("add", "second")

	if out := env.mustRun("toggle", "1"); out != "Completed 1: first\n" {
		t.Errorf("Unexpected toggle output %q", out)
	}

	active := env.mustRun("list", "--filter", "active")
	if strings.Contains(active, "first") || !strings.Contains(active, "second") {
		t.Errorf("Unexpected active list:\n%s", active)
	}
	if !strings.Contains(active, "Total: 2") || !strings.Contains(active, "Completed: 1") {
		t.Errorf("Expected stats over all tasks in filtered list:\n%s", active)
	}

	completed := env.mustRun("ls", "-f", "completed")
	if !strings.Contains(completed, "first") || strings.Contains(completed, "second") {
		t.Errorf("Unexpected completed list:\n%s", completed)
	}
	if !strings.Contains(completed, "[x]") {
		t.Errorf("Expected done mark:\n%s", completed)
	}

	if out := env.mustRun("done", "1"); out != "Reopened 1: first\n" {
		t.Errorf("Unexpected toggle output %q", out)
	}
	if out := env.mustRun("list", "-f", "completed"); !strings.Contains(out, "No completed tasks") {
		t.Errorf("Expected empty message:\n%s", out)
	}
}

func TestList_InvalidFilter(t *testing.T) {
	env := newTestEnv(t)

	if _, _, code := env.run("list", "--filter", "someday"); code != exitcode.UserError {
		t.Errorf("Expected exit %d, got %d", exitcode.UserError, code)
	}
}

func TestEdit(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "Buy milk")

	if out := env.mustRun("edit", "1", "Buy", "oat", "milk"); out != "Edited 1: Buy oat milk\n" {
		t.Errorf("Unexpected edit output %q", out)
	}
	if out := env.mustRun("edit", "1", "Buy oat milk"); out != "Unchanged 1: Buy oat milk\n" {
		t.Errorf("Unexpected edit output %q", out)
	}

	if _, _, code := env.run("edit", "1", "  "); code != exitcode.UserError {
		t.Errorf("Expected blank edit to fail with %d, got %d", exitcode.UserError, code)
	}

	env.mustRun("toggle", "1")
	_, errOut, code := env.run("edit", "1", "changed")
	if code != exitcode.UserError {
		t.Errorf("Expected editing a completed task to fail with %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(errOut, "completed") {
		t.Errorf("Unexpected stderr %q", errOut)
	}
	if out := env.mustRun("list"); !strings.Contains(out, "Buy oat milk") {
		t.Errorf("Expected text to stay unchanged:\n%s", out)
	}
}

func TestRm(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "first")
	env.mustRun("add", "second")

	if out := env.mustRun("rm", "1"); out != "Deleted 1: first\n" {
		t.Errorf("Unexpected rm output %q", out)
	}

	out := env.mustRun("stats")
	if out != "Total: 1\nCompleted: 0\n" {
		t.Errorf("Unexpected stats output %q", out)
	}
}

func TestTaskRef_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "only")

	tests := []struct {
		name string
		args []string
	}{
		{"missing ref", []string{"toggle"}},
		{"out of range", []string{"toggle", "2"}},
		{"zero", []string{"rm", "0"}},
		{"not a number", []string{"rm", "first"}},
		{"unknown id", []string{"rm", "--id", "42"}},
		{"id and number", []string{"rm", "--id", "42", "1"}},
	}

	for _, tc := range tests {
		if _, _, code := env.run(tc.args...); code != exitcode.UserError {
			t.Errorf("%s: expected exit %d, got %d", tc.name, exitcode.UserError, code)
		}
	}

	if out := env.mustRun("stats"); !strings.Contains(out, "Total: 1") {
		t.Errorf("Expected failed commands to leave tasks alone, got %q", out)
	}
}

func TestLanguageFlag(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "牛乳を買う")

	out := env.mustRun("--lang", "ja", "stats")
	if out != "総タスク: 1\n完了: 0\n" {
		t.Errorf("Unexpected localized stats %q", out)
	}
}

func TestConfigErrors(t *testing.T) {
	env := newTestEnv(t)

	if _, _, code := env.run("--backend", "redis", "list"); code != exitcode.ConfigError {
		t.Errorf("Expected unknown backend to exit %d, got %d", exitcode.ConfigError, code)
	}
	if _, _, code := env.run("--backend", "preferences", "list"); code != exitcode.ConfigError {
		t.Errorf("Expected preferences backend to exit %d outside the desktop app, got %d", exitcode.ConfigError, code)
	}
	if _, _, code := env.run("--log-level", "loud", "list"); code != exitcode.ConfigError {
		t.Errorf("Expected bad log level to exit %d, got %d", exitcode.ConfigError, code)
	}

	if err := os.WriteFile(env.configPath, []byte("log:\n  level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, code := env.run("list"); code != exitcode.ConfigError {
		t.Errorf("Expected invalid config file to exit %d, got %d", exitcode.ConfigError, code)
	}
}

func TestStorageError(t *testing.T) {
	env := newTestEnv(t)
	// A directory cannot be opened as a database
	env.dataPath = t.TempDir()

	if _, _, code := env.run("add", "x"); code != exitcode.StorageError {
		t.Errorf("Expected exit %d, got %d", exitcode.StorageError, code)
	}
}

func TestMemoryBackend(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun("--backend", "memory", "add", "gone")
	if out := env.mustRun("--backend", "memory", "stats"); !strings.Contains(out, "Total: 0") {
		t.Errorf("Expected memory backend to start empty, got %q", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("config", "init")
	if out != "Wrote "+env.configPath+"\n" {
		t.Errorf("Unexpected init output %q", out)
	}
	if _, _, code := env.run("config", "init"); code != exitcode.ConfigError {
		t.Errorf("Expected second init to exit %d, got %d", exitcode.ConfigError, code)
	}

	show := env.mustRun("config", "show")
	for _, want := range []string{"# " + env.configPath, "language: en", "backend: sqlite", "path: " + env.dataPath} {
		if !strings.Contains(show, want) {
			t.Errorf("Expected %q in config show:\n%s", want, show)
		}
	}
}

func TestConfigInit_ReplacesBrokenFile(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("storage:\n  backend: redis\n"), 0644); err != nil {
		t.Fatal(err)
	}

	env.mustRun("config", "init", "--force")
	env.mustRun("list")
}

func TestRoot_LaunchesGUI(t *testing.T) {
	env := newTestEnv(t)

	var got ui.AppConfig
	calls := 0
	launchGUI = func(cfg ui.AppConfig) error {
		calls++
		got = cfg
		return nil
	}
	t.Cleanup(func() { launchGUI = ui.Run })

	env.mustRun("--lang", "ru")
	env.mustRun("gui")

	if calls != 2 {
		t.Fatalf("Expected GUI to launch twice, got %d", calls)
	}
	if got.Version != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", got.Version)
	}
	if got.Config == nil || got.Config.Storage.Path != env.dataPath {
		t.Errorf("Expected --data to reach the GUI config, got %+v", got.Config)
	}
	if got.Logger == nil {
		t.Error("Expected a logger")
	}
}

func TestTUI_Launch(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("add", "first")

	var filter model.Filter
	var rows int
	launchTUI = func(ctx context.Context, m *tui.Model, opts ...tea.ProgramOption) error {
		filter = m.Filter()
		rows = len(m.Display().Rows)
		return nil
	}
	t.Cleanup(func() { launchTUI = tui.Run })

	env.mustRun("tui", "--filter", "active")

	if filter != model.FilterActive {
		t.Errorf("Expected active filter, got %s", filter)
	}
	if rows != 1 {
		t.Errorf("Expected 1 row, got %d", rows)
	}

	if _, _, code := env.run("tui", "--filter", "later"); code != exitcode.UserError {
		t.Errorf("Expected bad filter to exit %d, got %d", exitcode.UserError, code)
	}
}
