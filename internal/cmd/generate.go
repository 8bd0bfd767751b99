package cmd

import (
	"github.com/spf13/cobra"

	"toc-generator/internal/config"
	"toc-generator/internal/di"
)

type generateOptions struct {
	source       string
	output       string
	template     string
	preview      string
	schedule     string
	strictLabels bool
}

// NewGenerateCommand creates the generate subcommand.
func NewGenerateCommand(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the README from the solution tree",
		Long: `Regenerate the output document: copy the template, then append the
statistics table and the problem listing. With --schedule the document is
regenerated on the given cron schedule until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.loadConfig(cmd, opts.apply(cmd))
			if err != nil {
				return err
			}

			application, err := di.InitializeApp(cfg)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.source, "source", "", "root directory of the category folders")
	flags.StringVar(&opts.output, "output", "", "document to write")
	flags.StringVar(&opts.template, "template", "", "document prefix copied verbatim")
	flags.StringVar(&opts.preview, "preview", "", "also write an HTML preview to this path")
	flags.StringVar(&opts.schedule, "schedule", "", "cron schedule for repeated generation")
	flags.BoolVar(&opts.strictLabels, "strict-labels", false, "fail on categories missing from the label map")

	return cmd
}

func (o *generateOptions) apply(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("source") {
			cfg.SourceRoot = o.source
		}
		if flags.Changed("output") {
			cfg.OutputPath = o.output
		}
		if flags.Changed("template") {
			cfg.TemplatePath = o.template
		}
		if flags.Changed("preview") {
			cfg.PreviewPath = o.preview
		}
		if flags.Changed("schedule") {
			cfg.Schedule = o.schedule
		}
		if flags.Changed("strict-labels") {
			cfg.StrictLabels = o.strictLabels
		}
	}
}
