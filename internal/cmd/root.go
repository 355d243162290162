// Package cmd defines the command-line interface
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mjeanroy/eslint/internal/app"
	"github.com/mjeanroy/eslint/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cfg := config.Default()
	var noIgnore bool
	var configFile string

	cmd := &cobra.Command{
		Use:   "eslint [patterns...]",
		Short: "Resolve, filter and parse source files for analysis",
		Long: `Resolves file, directory and glob patterns into a set of source
files, removes files matched by ignore rules, parses the rest and
reports the results. Relative patterns are resolved against --cwd.`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				fc, err := config.LoadFile(configFile)
				if err != nil {
					return err
				}
				cfg.Merge(fc, cmd.Flags().Changed)
			}

			cfg.Ignore = cfg.Ignore && !noIgnore
			cfg.Patterns = args
			if len(cfg.Patterns) == 0 {
				cfg.Patterns = []string{"."}
			}
			cfg.UseColors = config.DetectColors(cfg.NoColor)

			return app.New(cfg).Run()
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&cfg.Extensions, "ext", nil, "file extensions used when expanding directories (default .js)")
	flags.StringVar(&cfg.Cwd, "cwd", ".", "resolution root for relative patterns and ignore rules")
	flags.BoolVar(&noIgnore, "no-ignore", false, "disable the ignore filter")
	flags.StringVar(&cfg.IgnorePath, "ignore-path", "", "location of the ignore file (default <cwd>/.eslintignore)")
	flags.StringSliceVar(&cfg.IgnorePatterns, "ignore-pattern", nil, "additional ignore rules (gitignore syntax)")
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "output results in JSON format")
	flags.BoolVar(&cfg.ShowFailed, "show-failed", false, "list files that failed to parse")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "logging level (debug, info, warn, error)")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable color output")
	flags.BoolVar(&cfg.Quiet, "quiet", false, "suppress informational messages")

	return cmd
}
