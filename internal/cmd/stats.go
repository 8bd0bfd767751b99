package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"toc-generator/internal/config"
	"toc-generator/internal/di"
	"toc-generator/internal/domain/model"
)

// NewStatsCommand creates the stats subcommand.
func NewStatsCommand(global *globalOptions) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-category counts without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.loadConfig(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("source") {
					cfg.SourceRoot = source
				}
			})
			if err != nil {
				return err
			}

			generator, err := di.InitializeGenerator(cfg)
			if err != nil {
				return err
			}

			_, stats, err := generator.Collect(cmd.Context())
			if err != nil {
				return err
			}

			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "root directory of the category folders")
	return cmd
}

func printStats(w io.Writer, stats model.Stats) {
	label := color.New(color.FgCyan)
	easy := color.New(color.FgGreen)
	medium := color.New(color.FgYellow)
	hard := color.New(color.FgRed)
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "%-22s %5s %5s %7s %5s\n", "Category", "Sum", "Easy", "Medium", "Hard")
	row := func(name string, c model.CategoryStats, nameColor *color.Color) {
		fmt.Fprintf(w, "%s %5d %s %s %s\n",
			nameColor.Sprintf("%-22s", name),
			c.Total,
			easy.Sprintf("%5d", c.Easy),
			medium.Sprintf("%7d", c.Medium),
			hard.Sprintf("%5d", c.Hard),
		)
	}

	for _, c := range stats.Categories {
		name := c.DisplayName
		if name == "" {
			name = c.Label + " (unmapped)"
		}
		row(name, c, label)
	}
	row("Total", stats.Total, bold)
}
