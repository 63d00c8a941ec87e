package migrate

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints the per-slide progress lines. The text of each line is
// fixed; only the verb is colored, and only when colorize is set.
type Reporter struct {
	out     io.Writer
	skipped *color.Color
	updated *color.Color
	done    *color.Color
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, colorize bool) *Reporter {
	r := &Reporter{
		out:     out,
		skipped: color.New(color.FgYellow),
		updated: color.New(color.FgGreen),
		done:    color.New(color.Bold),
	}
	if !colorize {
		r.skipped.DisableColor()
		r.updated.DisableColor()
		r.done.DisableColor()
	}
	return r
}

// Skipped reports a slide whose file does not exist.
func (r *Reporter) Skipped(slide string) error {
	_, err := fmt.Fprintf(r.out, "%s %s - file not found\n", r.skipped.Sprint("Skipping"), slide)
	return err //nolint:wrapcheck // caller wraps
}

// Updated reports a slide whose file was rewritten.
func (r *Reporter) Updated(slide string) error {
	_, err := fmt.Fprintf(r.out, "%s %s\n", r.updated.Sprint("Updated"), slide)
	return err //nolint:wrapcheck // caller wraps
}

// Done reports the end of a run.
func (r *Reporter) Done() error {
	_, err := fmt.Fprintln(r.out, r.done.Sprint("Done!"))
	return err //nolint:wrapcheck // caller wraps
}
