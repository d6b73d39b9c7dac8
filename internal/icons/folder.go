package icons

import (
	"bytes"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/gobwas/glob"
	"golang.org/x/image/bmp"

	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
)

// Folder scanning constants
const (
	IconFilePattern = "*.{png,svg,jpg,jpeg,bmp}"
	MetaExtension   = ".meta"
	BMPExtension    = ".bmp"
	PNGExtension    = ".png"
)

var iconFileGlob = glob.MustCompile(IconFilePattern)

// FolderSource loads custom icons from a folder tree. The icon name is the
// file name without extension; BMP files are converted to PNG.
type FolderSource struct {
	root string
}

// NewFolderSource creates a source rooted at dir
func NewFolderSource(dir string) *FolderSource {
	return &FolderSource{root: dir}
}

// Location returns the scanned folder
func (f *FolderSource) Location() string {
	return f.root
}

// Icons reads every icon file below the folder. Names seen twice keep the
// first file in path order.
func (f *FolderSource) Icons() (map[string]fyne.Resource, error) {
	if strings.TrimSpace(f.root) == "" {
		return nil, fmt.Errorf("no custom icon folder configured")
	}
	info, err := os.Stat(f.root)
	if err != nil {
		return nil, fmt.Errorf("custom icon folder couldn't be found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("custom icon path is not a folder: %s", f.root)
	}

	var paths []string
	err = filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsIconFile(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan custom icons: %w", err)
	}
	sort.Strings(paths)

	icons := make(map[string]fyne.Resource, len(paths))
	for _, path := range paths {
		name := IconName(path)
		if _, exists := icons[name]; exists {
			logging.Warnf("Duplicate custom icon %s ignored: %s", name, path)
			continue
		}
		res, err := loadIcon(path)
		if err != nil {
			logging.Warnf("Skipping custom icon %s: %v", path, err)
			continue
		}
		icons[name] = res
	}
	return icons, nil
}

// IsIconFile reports whether a file name is a loadable icon
func IsIconFile(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, MetaExtension) {
		return false
	}
	return iconFileGlob.Match(lower)
}

// IconName returns the icon name for a file path
func IconName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func loadIcon(path string) (fyne.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(base), BMPExtension) {
		converted, err := bmpToPNG(data)
		if err != nil {
			return nil, err
		}
		return fyne.NewStaticResource(IconName(path)+PNGExtension, converted), nil
	}
	return fyne.NewStaticResource(base, data), nil
}

// bmpToPNG re-encodes a BMP image as PNG so every renderer can draw it
func bmpToPNG(data []byte) ([]byte, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode bmp: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
