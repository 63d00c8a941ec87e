package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/slideprops/internal/migrate"
)

// createListCommand creates the list command.
func createListCommand(deps dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured slides and their component names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd, deps)
			if err != nil {
				return err
			}

			entries, err := migrate.New(deps.fs, cfg, nil).Inventory()
			if err != nil {
				return fmt.Errorf("failed to list slides: %w", err)
			}

			missing := color.New(color.FgYellow)
			if !deps.colorize {
				missing.DisableColor()
			}

			slideWidth, componentWidth := columnWidths(entries)
			out := cmd.OutOrStdout()
			for _, entry := range entries {
				status := "present"
				if !entry.Exists {
					status = missing.Sprint("missing")
				}
				if _, err := fmt.Fprintf(out, "%-*s %-*s %s\n",
					slideWidth, entry.Slide, componentWidth, entry.Component, status); err != nil {
					return fmt.Errorf("failed to print slide: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("base-path", "", "Directory containing the slide files (overrides config)")
	return cmd
}

// columnWidths returns the widest slide and component names in entries.
func columnWidths(entries []migrate.Entry) (slideWidth, componentWidth int) {
	for _, entry := range entries {
		slideWidth = max(slideWidth, len(entry.Slide))
		componentWidth = max(componentWidth, len(entry.Component))
	}
	return slideWidth, componentWidth
}
