package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/slideprops/internal/config"
	"github.com/wizzomafizzo/slideprops/internal/constants"
	"github.com/wizzomafizzo/slideprops/internal/logging"
	"github.com/wizzomafizzo/slideprops/internal/project"
	"github.com/wizzomafizzo/slideprops/internal/prompt"
)

// dependencies holds everything a command touches outside its own flags.
type dependencies struct {
	fs          afero.Fs
	logWriter   io.Writer
	getwd       func() (string, error)
	newPrompter func() prompt.Prompter
	colorize    bool
}

func defaultDependencies() dependencies {
	return dependencies{
		fs:          afero.NewOsFs(),
		getwd:       os.Getwd,
		newPrompter: prompt.NewLinerPrompter,
		colorize:    !color.NoColor,
	}
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return buildRootCommand(defaultDependencies())
}

func buildRootCommand(deps dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Thread onNavigateHome through presentation slides",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")

	rootCmd.AddCommand(
		createRunCommand(deps),
		createListCommand(deps),
		createValidateCommand(deps),
		createInitCommand(deps),
	)

	return rootCmd
}

// configPathFromCommand returns the --config value. When the flag is left at
// its default, the file is looked up at the project root above the working
// directory.
func configPathFromCommand(cmd *cobra.Command, deps dependencies) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if cmd.Flags().Changed("config") || filepath.IsAbs(configPath) {
		return configPath, nil
	}

	workDir, err := deps.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(project.FindRoot(deps.fs, workDir), configPath), nil
}

// loadConfigFromCommand loads the config named by --config, falling back to
// the built-in defaults when the file does not exist, and applies
// --base-path when the command defines and sets it.
func loadConfigFromCommand(cmd *cobra.Command, deps dependencies) (*config.Config, error) {
	configPath, err := configPathFromCommand(cmd, deps)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(deps.fs, configPath)
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by config
	}

	if flag := cmd.Flags().Lookup("base-path"); flag != nil && flag.Changed {
		cfg.BasePath = flag.Value.String()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
	}

	return cfg, nil
}

// withLogger attaches the diagnostic logger configured by cfg to ctx.
func withLogger(ctx context.Context, cfg *config.Config, deps dependencies) (context.Context, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err //nolint:wrapcheck // already descriptive
	}

	ctx, err = logging.New(ctx, deps.fs, logging.Config{
		Writer: deps.logWriter,
		Level:  level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return ctx, nil
}
