package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOutputDir(t *testing.T) {
	dir := DefaultOutputDir()

	if dir == "" {
		t.Error("Default output directory should not be empty")
	}
	if filepath.Base(dir) != DefaultOutputFolderName {
		t.Errorf("Expected directory named %q, got %q", DefaultOutputFolderName, filepath.Base(dir))
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "output")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path is not a directory")
	}

	// Creating an existing directory should succeed
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestCreateDirectoryIfNotExists_Empty(t *testing.T) {
	err := CreateDirectoryIfNotExists("")
	if err == nil {
		t.Error("Expected error for empty directory path")
	}
}

func TestOpenFolderInManager_Missing(t *testing.T) {
	err := OpenFolderInManager(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("Expected error for missing directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestOpenFolderInManager_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := OpenFolderInManager(file)
	if err == nil {
		t.Error("Expected error for non-directory path")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Unexpected error message: %v", err)
	}
}
