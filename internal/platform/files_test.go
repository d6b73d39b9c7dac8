package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "icons", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetDefaultIconFolder(t *testing.T) {
	dir, err := GetDefaultIconFolder()
	if err != nil {
		t.Fatalf("Failed to get icon folder: %v", err)
	}

	if filepath.Base(dir) != IconsFolderName {
		t.Errorf("Expected folder to end with %s, got: %s", IconsFolderName, dir)
	}
	if filepath.Base(filepath.Dir(dir)) != AppFolderName {
		t.Errorf("Expected parent folder %s, got: %s", AppFolderName, dir)
	}
}

func TestOpenFolderInManager_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	if err := OpenFolderInManager(missing); err == nil {
		t.Error("Expected error for missing folder")
	}
}

func TestOpenFolderInManager_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(file, []byte("items: []"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := OpenFolderInManager(file); err == nil {
		t.Error("Expected error when passing a file")
	}
}

func TestOpenFileWithDefaultApp_Missing(t *testing.T) {
	if err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes", "main.yaml")

	if err := WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected 'second', got %q", string(data))
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected temp files to be cleaned up, found %d entries", len(entries))
	}
}
