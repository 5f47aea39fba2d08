package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/tint"
)

func newProject(t *testing.T, name string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Join(root, "cmd"), 0755); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/"+name+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write go.mod: %v", err)
	}
	return root
}

func TestColorCommandJSON(t *testing.T) {
	setupTestEnvironment(t)
	root := newProject(t, "my-project")

	output := runCLI(t, "color", filepath.Join(root, "cmd"), "--theme", "dark", "--json")

	var got colorOutput
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, output)
	}

	want := tint.ForIdentity("my-project", palette.Dark, palette.Default()).Hex()
	if got.Accent != want {
		t.Errorf("Accent = %s, want %s", got.Accent, want)
	}
	if got.Root != root {
		t.Errorf("Root = %s, want %s", got.Root, root)
	}
	if got.Identity != "my-project" || got.Source != "name" || got.Theme != "dark" {
		t.Errorf("Unexpected identity fields: %+v", got)
	}
}

func TestColorCommandIsStable(t *testing.T) {
	setupTestEnvironment(t)
	root := newProject(t, "stable")

	first := runCLI(t, "color", root, "--json")
	second := runCLI(t, "color", root, "--json")
	if first != second {
		t.Errorf("Color output changed between runs:\n%s\n%s", first, second)
	}
}

func TestColorCommandText(t *testing.T) {
	setupTestEnvironment(t)
	root := newProject(t, "texty")

	output := runCLI(t, "color", root)
	for _, want := range []string{"[texty]", "Workspace:", "Identity:", "'texty'", "(name)", "Gradient:"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output:\n%s", want, output)
		}
	}
}

func TestColorCommandRejectsBadInput(t *testing.T) {
	setupTestEnvironment(t)

	output := runCLI(t, "color", "--theme", "sepia")
	if !strings.Contains(output, "✗") || !strings.Contains(output, "unknown theme") {
		t.Errorf("Expected theme error, got: %s", output)
	}

	output = runCLI(t, "color", filepath.Join(t.TempDir(), "missing"))
	if !strings.Contains(output, "does not exist") {
		t.Errorf("Expected missing path error, got: %s", output)
	}

	output = runCLI(t, "color", "--source", "moon-phase")
	if !strings.Contains(output, "unknown hash source") {
		t.Errorf("Expected source error, got: %s", output)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	statePath := setupTestEnvironment(t)

	output := runCLI(t, "config", "set", "gradient-brightness", "70")
	if !strings.Contains(output, "✓") || !strings.Contains(output, "'70'") {
		t.Errorf("Expected success message, got: %s", output)
	}
	if _, err := os.Stat(statePath); err != nil {
		t.Fatalf("State file was not written: %v", err)
	}

	output = runCLI(t, "config", "show", "--json")
	var view struct {
		Settings []struct {
			Name    string `json:"name"`
			Value   string `json:"value"`
			Default bool   `json:"default"`
		} `json:"settings"`
	}
	if err := json.Unmarshal([]byte(output), &view); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, output)
	}
	found := false
	for _, s := range view.Settings {
		if s.Name == "gradient-brightness" {
			found = true
			if s.Value != "70" || s.Default {
				t.Errorf("Unexpected gradient-brightness entry: %+v", s)
			}
		}
	}
	if !found {
		t.Error("gradient-brightness missing from config show")
	}

	output = runCLI(t, "config", "show")
	if !strings.Contains(output, "gradient-darkness") || !strings.Contains(output, "(default)") {
		t.Errorf("Expected defaults to be marked, got: %s", output)
	}
}

func TestConfigSetRejectsInvalid(t *testing.T) {
	setupTestEnvironment(t)

	output := runCLI(t, "config", "set", "gradient-brightness", "150")
	if !strings.Contains(output, "Invalid value") {
		t.Errorf("Expected invalid value message, got: %s", output)
	}

	output = runCLI(t, "config", "set", "favourite-color", "blue")
	if !strings.Contains(output, "Unknown setting") || !strings.Contains(output, "hash-source") {
		t.Errorf("Expected unknown setting message with hints, got: %s", output)
	}

	output = runCLI(t, "config", "show", "--json")
	if !strings.Contains(output, `"value": "62"`) {
		t.Errorf("Rejected value must not be stored, got: %s", output)
	}
}

func TestConfigStateFlag(t *testing.T) {
	setupTestEnvironment(t)
	other := filepath.Join(t.TempDir(), "other.toml")

	runCLI(t, "config", "--state", other, "set", "hash-source", "path")
	if _, err := os.Stat(other); err != nil {
		t.Fatalf("--state file was not written: %v", err)
	}

	output := runCLI(t, "config", "show", "--json")
	if strings.Contains(output, `"value": "path"`) {
		t.Errorf("Default state file should be untouched, got: %s", output)
	}
}

func TestConfigExportImportReset(t *testing.T) {
	setupTestEnvironment(t)
	exported := filepath.Join(t.TempDir(), "pigment.toml")

	runCLI(t, "config", "set", "light-colors", "#112233 #445566")
	output := runCLI(t, "config", "export", exported)
	if !strings.Contains(output, "Exported") {
		t.Errorf("Expected export message, got: %s", output)
	}

	output = runCLI(t, "config", "reset")
	if !strings.Contains(output, "reset to defaults") {
		t.Errorf("Expected reset message, got: %s", output)
	}
	if out := runCLI(t, "config", "show", "--json"); strings.Contains(out, "#112233ff") {
		t.Errorf("Reset should restore the default palette, got: %s", out)
	}

	output = runCLI(t, "config", "import", exported)
	if !strings.Contains(output, "Settings imported") {
		t.Errorf("Expected import message, got: %s", output)
	}
	if out := runCLI(t, "config", "show", "--json"); !strings.Contains(out, "#112233ff #445566ff") {
		t.Errorf("Import should restore the exported palette, got: %s", out)
	}
}

func TestConfigImportWarnsOnInvalidKeys(t *testing.T) {
	setupTestEnvironment(t)
	file := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(file, []byte("gradient_darkness = 400\nhash_source = \"path\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	output := runCLI(t, "config", "import", file)
	if !strings.Contains(output, "⚠") || !strings.Contains(output, "'gradient-darkness'") {
		t.Errorf("Expected warning for gradient-darkness, got: %s", output)
	}

	output = runCLI(t, "config", "import", filepath.Join(t.TempDir(), "missing.toml"))
	if !strings.Contains(output, "does not exist") {
		t.Errorf("Expected missing file message, got: %s", output)
	}
}

func TestCorruptStateFallsBackToDefaults(t *testing.T) {
	statePath := setupTestEnvironment(t)
	if err := os.MkdirAll(filepath.Dir(statePath), 0700); err != nil {
		t.Fatalf("Failed to create state dir: %v", err)
	}
	if err := os.WriteFile(statePath, []byte("akasha = \"bm90IGEgdmFsaWQgZnJhbWUgYXQgYWxsIGJ1dCBsb25nIGVub3VnaA==\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	output := runCLI(t, "config", "show", "--json")
	if !strings.Contains(output, `"value": "62"`) {
		t.Errorf("Expected default settings, got: %s", output)
	}
}
