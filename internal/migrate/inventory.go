package migrate

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/wizzomafizzo/slideprops/internal/naming"
)

// Entry describes one configured slide and whether its file is present.
type Entry struct {
	Slide     string
	Component string
	Path      string
	Exists    bool
}

// Inventory resolves every configured slide without modifying anything.
func (r *Runner) Inventory() ([]Entry, error) {
	entries := make([]Entry, 0, len(r.config.Slides))
	for _, slide := range r.config.Slides {
		path := r.Path(slide)

		_, err := r.fs.Stat(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		entries = append(entries, Entry{
			Slide:     slide,
			Component: naming.ComponentName(slide),
			Path:      path,
			Exists:    err == nil,
		})
	}
	return entries, nil
}
