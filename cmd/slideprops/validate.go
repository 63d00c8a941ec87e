package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createValidateCommand creates the validate command.
func createValidateCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long:  "Validate configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd, deps)
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d slides in %s\n",
				len(cfg.Slides), cfg.BasePath)
			if err != nil {
				return fmt.Errorf("failed to print result: %w", err)
			}
			return nil
		},
	}
}
