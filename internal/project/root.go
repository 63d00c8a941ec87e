// Package project locates the root of the web project that holds the slides.
package project

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// markers identify a project root, checked in order.
var markers = []string{"package.json", ".git", "go.mod"}

// FindRoot walks up from startDir to the nearest directory containing a
// project marker. It returns startDir when no ancestor has one.
func FindRoot(fs afero.Fs, startDir string) string {
	if root, found := findProjectMarker(fs, startDir); found {
		return root
	}
	return startDir
}

// findProjectMarker searches for project root markers starting from the given directory
func findProjectMarker(fs afero.Fs, startDir string) (string, bool) {
	currentDir := filepath.Clean(startDir)

	for {
		if hasProjectMarker(fs, currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", false
}

// hasProjectMarker checks if any marker exists in the directory
func hasProjectMarker(fs afero.Fs, dir string) bool {
	for _, marker := range markers {
		if _, err := fs.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
