package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// LoadTestdataString loads a file from the calling package's testdata directory
func LoadTestdataString(t *testing.T, relativePath string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("testdata", relativePath)) //nolint:gosec // test fixture path
	if err != nil {
		t.Fatalf("Failed to load testdata file %s: %v", relativePath, err)
	}
	return string(content)
}

// WriteSlides seeds fs with one file per entry of files, keyed by file name
// relative to dir.
func WriteSlides(t *testing.T, fs afero.Fs, dir string, files map[string]string) {
	t.Helper()

	if err := fs.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("Failed to create slide directory %s: %v", dir, err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write slide %s: %v", path, err)
		}
	}
}

// ReadSlide returns the content of dir/name from fs.
func ReadSlide(t *testing.T, fs afero.Fs, dir, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read slide %s: %v", name, err)
	}
	return string(data)
}
