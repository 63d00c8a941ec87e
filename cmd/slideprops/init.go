package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/slideprops/internal/config"
	"github.com/wizzomafizzo/slideprops/internal/prompt"
)

// createInitCommand creates the init command.
func createInitCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file seeded with the default slide list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(cmd, deps)
			if err != nil {
				return err
			}

			prompter := deps.newPrompter()
			defer func() { _ = prompter.Close() }()

			exists, err := afero.Exists(deps.fs, configPath)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", configPath, err)
			}
			if exists {
				overwrite, err := prompt.Confirm(prompter, configPath+" exists. Overwrite?")
				if err != nil {
					return fmt.Errorf("init aborted: %w", err)
				}
				if !overwrite {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s\n", configPath)
					return nil
				}
			}

			cfg := config.DefaultConfig()
			cfg.BasePath, err = prompt.TextInputWithDefault(prompter, "Slide directory", cfg.BasePath)
			if err != nil {
				return fmt.Errorf("init aborted: %w", err)
			}

			if err := cfg.Save(deps.fs, configPath); err != nil {
				return err //nolint:wrapcheck // already wrapped by config
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d slides\n", configPath, len(cfg.Slides))
			if err != nil {
				return fmt.Errorf("failed to print result: %w", err)
			}
			return nil
		},
	}
}
