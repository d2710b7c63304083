// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package cmd provides the root command for the brewbump CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/defenseunicorns/brewbump"
	"github.com/defenseunicorns/brewbump/config"
)

// EnvConfig names a config file when --config is not given
const EnvConfig = "BREWBUMP_CONFIG"

// NewRootCmd creates the root command for the brewbump CLI.
func NewRootCmd() *cobra.Command {
	var (
		level      string
		ver        bool
		dry        bool
		configPath string
	)

	// --config, then $BREWBUMP_CONFIG, then DefaultFileName in the working directory
	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		fs := afero.NewOsFs()

		path := configPath
		if !cmd.Flags().Changed("config") {
			path = os.Getenv(EnvConfig)
		}

		if path == "" {
			return config.LoadConfig(fs, config.DefaultFileName)
		}

		f, err := fs.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		cfg, err := config.Read(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		return cfg, nil
	}

	root := &cobra.Command{
		Use:   "brewbump",
		Short: "Patch a Homebrew formula with a new checksum and version tag",
		Long: `Patch a Homebrew formula with a new checksum and version tag.

All inputs are read from the environment:

  HASH          new sha256 checksum
  TARGET        build target owning the checksum (x86_64-apple-darwin, x86_64-unknown-linux-gnu)
  FORMULA_PATH  path to the formula file
  TAG           new version tag (vMAJOR.MINOR.PATCH)
`,
		Example: `
HASH=$(sha256sum tool.tar.gz | cut -d' ' -f1) TARGET=x86_64-apple-darwin FORMULA_PATH=Formula/tool.rb TAG=v1.2.3 brewbump

brewbump --dry-run
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger := log.FromContext(cmd.Context())
			logger.SetLevel(l)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			if ver {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("version information not available")
				}
				fmt.Fprintln(os.Stdout, bi.Main.Version)
				return nil
			}

			params, err := brewbump.ParamsFromEnv(os.LookupEnv)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.Debug("loaded config", "targets", cfg.Targets)

			patcher := brewbump.NewPatcher(afero.NewOsFs(), cfg.Targets...)

			if dry {
				formula, err := patcher.Preview(ctx, params)
				if err != nil {
					return err
				}
				brewbump.PrintFormula(logger, formula)
				return nil
			}

			return patcher.Patch(ctx, params)
		},
	}

	root.Flags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print the version number of brewbump and exit")
	root.Flags().BoolVar(&dry, "dry-run", false, "Print the patched formula instead of writing it")
	root.Flags().StringVar(&configPath, "config", "", fmt.Sprintf("Path to a config file (default is %s, overridden by $%s)", config.DefaultFileName, EnvConfig))
	_ = root.MarkFlagFilename("config", "yaml", "yml")

	return root
}

// Main executes the root command for the brewbump CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// release pipelines read diagnostics from stdout
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	err := cli.ExecuteContext(ctx)
	if err != nil {
		logger.Error(err)
	}
	return ParseExitCode(err)
}

// ParseExitCode calculates the exit code from a given error
//
// 0 - the error was nil
// 1 - there was some error
func ParseExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
