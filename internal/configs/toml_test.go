package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/identity"
	"github.com/PolarWolf314/pigment/internal/palette"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.toml")

	type TestStruct struct {
		Name  string
		Count int
	}

	originalData := TestStruct{Name: "pigment", Count: 3}
	if err := SaveTOML(testFile, originalData); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loadedData := TestStruct{}
	md, err := LoadTOML(testFile, &loadedData)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if !md.IsDefined("Name") {
		t.Error("Expected Name to be defined")
	}
	if loadedData != originalData {
		t.Errorf("Expected %+v, got %+v", originalData, loadedData)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	var data struct{ Name string }
	if _, err := LoadTOML(filepath.Join(t.TempDir(), "nonexistent.toml"), &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestSaveTOMLCreatesDirectory(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "subdir", "test.toml")

	if err := SaveTOML(testFile, struct{ Name string }{Name: "Test"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}
	if _, err := os.Stat(testFile); os.IsNotExist(err) {
		t.Fatal("File was not created")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s := customSettings(t)
	// Hex export keeps alpha to 1/255 precision, so use opaque stops here.
	s.Palette = Defaults().Palette

	if err := Export(path, s); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	got, errs, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("Expected no field errors, got %v", errs)
	}
	if !got.Equal(s) {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", got, s)
	}
}

func TestImportDefaultsMissingAndInvalidKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	content := `gradient_brightness = 150
hash_source = "path"
light_colors = ["#ff0000", "nope"]
show_suggestion = false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	s, errs, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if s.GradientBrightness != DefaultGradientBrightness {
		t.Errorf("Expected default brightness, got %d", s.GradientBrightness)
	}
	if s.HashSource != identity.ByFullPath {
		t.Errorf("Expected path hash source, got %q", s.HashSource)
	}
	if s.ShowSuggestion {
		t.Error("Expected show_suggestion=false to be honoured")
	}
	if s.GradientDarkness != DefaultGradientDarkness || s.Version != CurrentVersion {
		t.Errorf("Expected missing keys to default, got %+v", s)
	}
	if len(errs) != 2 {
		t.Fatalf("Expected 2 field errors, got %v", errs)
	}
	if !errors.Is(errs[0], perrors.ErrInvalidPercent) || !errors.Is(errs[1], perrors.ErrInvalidColor) {
		t.Errorf("Unexpected errors: %v", errs)
	}
}

func TestImportRejectsBrokenTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("gradient_brightness = = 3"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, _, err := Import(path); err == nil {
		t.Fatal("Expected error for invalid TOML")
	}
}

func TestImportDataFromMemory(t *testing.T) {
	data := []byte("gradient_darkness = 7\nhash_source = \"name-day\"\nlight_colors = [\"#000000\", \"nope\"]\n")

	s, errs, err := ImportData(data)
	if err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}
	if s.GradientDarkness != 7 {
		t.Errorf("GradientDarkness = %d, want 7", s.GradientDarkness)
	}
	if s.HashSource != identity.ByProjectNameAndDay {
		t.Errorf("HashSource = %q, want %q", s.HashSource, identity.ByProjectNameAndDay)
	}
	if !s.Palette.Equal(palette.Default()) {
		t.Error("An invalid light list should leave the default palette")
	}
	if len(errs) != 1 || errs[0].Tag != TagLightColors {
		t.Errorf("Expected one light-colors error, got %v", errs)
	}

	if _, _, err := ImportData([]byte("[[broken")); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}
