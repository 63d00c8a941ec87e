package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/slideprops/internal/codemod"
	"github.com/wizzomafizzo/slideprops/internal/config"
	"github.com/wizzomafizzo/slideprops/internal/logging"
	"github.com/wizzomafizzo/slideprops/internal/naming"
)

// Summary lists the slides a run touched, in processing order.
type Summary struct {
	Updated []string
	Skipped []string
}

// Runner applies the migration to every configured slide.
type Runner struct {
	fs       afero.Fs
	config   *config.Config
	reporter *Reporter
}

// New creates a runner over fsys. cfg is expected to be validated.
func New(fsys afero.Fs, cfg *config.Config, reporter *Reporter) *Runner {
	return &Runner{fs: fsys, config: cfg, reporter: reporter}
}

// Path returns the source file path for slide.
func (r *Runner) Path(slide string) string {
	return filepath.Join(r.config.BasePath, naming.FileName(slide, r.config.Extension))
}

// Run migrates each slide in order and prints "Done!" once all are handled.
// The first error aborts the run; slides after it are not visited and the
// returned summary covers only the slides completed so far.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	logger := logging.Get(ctx)
	logger.Info().
		Str("base_path", r.config.BasePath).
		Int("slides", len(r.config.Slides)).
		Msg("starting migration")

	var summary Summary
	for _, slide := range r.config.Slides {
		updated, err := r.migrate(ctx, slide)
		if err != nil {
			logger.Error().Err(err).Str("slide", slide).Msg("migration aborted")
			return summary, fmt.Errorf("failed to migrate %s: %w", slide, err)
		}
		if updated {
			summary.Updated = append(summary.Updated, slide)
		} else {
			summary.Skipped = append(summary.Skipped, slide)
		}
	}

	if err := r.reporter.Done(); err != nil {
		return summary, fmt.Errorf("failed to report completion: %w", err)
	}

	logger.Info().
		Int("updated", len(summary.Updated)).
		Int("skipped", len(summary.Skipped)).
		Msg("migration complete")
	return summary, nil
}

// migrate rewrites one slide file. It returns false when the file is absent.
func (r *Runner) migrate(ctx context.Context, slide string) (bool, error) {
	logger := logging.Get(ctx)
	path := r.Path(slide)

	info, err := r.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("slide", slide).Str("path", path).Msg("file not found")
		if err := r.reporter.Skipped(slide); err != nil {
			return false, fmt.Errorf("failed to report skip: %w", err)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	component := naming.ComponentName(slide)
	result := codemod.Apply(string(data), component)

	if err := afero.WriteFile(r.fs, path, []byte(result.Content), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Debug().
		Str("slide", slide).
		Str("component", component).
		Bool("declaration_injected", result.DeclarationInjected).
		Int("numbered_sites", result.NumberedSites).
		Int("bare_sites", result.BareSites).
		Bool("changed", result.Changed()).
		Msg("rewrote slide")

	if err := r.reporter.Updated(slide); err != nil {
		return true, fmt.Errorf("failed to report update: %w", err)
	}
	return true, nil
}
