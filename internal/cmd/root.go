package cmd

import (
	"github.com/spf13/cobra"

	"toc-generator/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand creates and returns the root cobra command for toc
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "toc",
		Short: "Generate a solutions table of contents",
		Long: `toc scans a tree of solution files grouped by category directory,
reads the Title, Link and Difficulty comments of each file, and writes
a README with per-category statistics and a sorted problem listing.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./"+config.DefaultConfigFile+" if present)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: auto, json, text")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// loadConfig applies defaults, the config file, the environment and finally explicit flags.
func (o *globalOptions) loadConfig(cmd *cobra.Command, override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if override != nil {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
