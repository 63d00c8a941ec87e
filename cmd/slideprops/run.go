package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/slideprops/internal/logging"
	"github.com/wizzomafizzo/slideprops/internal/migrate"
)

// createRunCommand creates the run command.
func createRunCommand(deps dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Add onNavigateHome to every configured slide",
		Long: "Rewrite each configured slide file in place: declare the optional " +
			"onNavigateHome prop, destructure it in the component signature and pass " +
			"it to every SlideContainer. Missing files are skipped; any other error " +
			"stops the run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd, deps)
			if err != nil {
				return err
			}

			ctx, err := withLogger(cmd.Context(), cfg, deps)
			if err != nil {
				return err
			}

			reporter := migrate.NewReporter(cmd.OutOrStdout(), deps.colorize)
			if _, err := migrate.New(deps.fs, cfg, reporter).Run(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			logging.Get(ctx).Debug().Msg("run command finished")
			return nil
		},
	}

	cmd.Flags().String("base-path", "", "Directory containing the slide files (overrides config)")
	return cmd
}
