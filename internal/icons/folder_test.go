package icons

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, encode func(*bytes.Buffer, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func encodePNG(buf *bytes.Buffer, img image.Image) error { return png.Encode(buf, img) }
func encodeBMP(buf *bytes.Buffer, img image.Image) error { return bmp.Encode(buf, img) }

func TestIsIconFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"Camera.png", true},
		{"Camera.PNG", true},
		{"Light.svg", true},
		{"Photo.jpeg", true},
		{"Old.bmp", true},
		{"Camera.png.meta", false},
		{"notes.txt", false},
		{"png", false},
	}

	for _, test := range tests {
		if got := IsIconFile(test.name); got != test.expected {
			t.Errorf("IsIconFile(%s) = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestFolderSource_Icons(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "Camera.png"), encodePNG)
	writeImage(t, filepath.Join(dir, "nested", "Legacy.bmp"), encodeBMP)
	if err := os.WriteFile(filepath.Join(dir, "Light.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Camera.png.meta"), []byte("guid: 1"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	icons, err := NewFolderSource(dir).Icons()
	if err != nil {
		t.Fatalf("Icons failed: %v", err)
	}
	if len(icons) != 3 {
		t.Fatalf("Expected 3 icons, got %d: %v", len(icons), icons)
	}

	legacy, ok := icons["Legacy"]
	if !ok {
		t.Fatal("Nested BMP icon should be loaded")
	}
	if !strings.HasSuffix(legacy.Name(), ".png") {
		t.Errorf("BMP should be converted to PNG, got %s", legacy.Name())
	}
	if _, err := png.Decode(bytes.NewReader(legacy.Content())); err != nil {
		t.Errorf("Converted icon is not a valid PNG: %v", err)
	}

	if icons["Light"].Name() != "Light.svg" {
		t.Errorf("Expected Light.svg, got %s", icons["Light"].Name())
	}
}

func TestFolderSource_Missing(t *testing.T) {
	if _, err := NewFolderSource(filepath.Join(t.TempDir(), "nope")).Icons(); err == nil {
		t.Error("Expected error for a missing folder")
	}
	if _, err := NewFolderSource("").Icons(); err == nil {
		t.Error("Expected error for an empty folder path")
	}
}

func TestFolderSource_SkipsBrokenBMP(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Broken.bmp"), []byte("not a bmp"), 0644); err != nil {
		t.Fatal(err)
	}

	icons, err := NewFolderSource(dir).Icons()
	if err != nil {
		t.Fatalf("Icons failed: %v", err)
	}
	if len(icons) != 0 {
		t.Errorf("Broken files should be skipped, got %d icons", len(icons))
	}
}
