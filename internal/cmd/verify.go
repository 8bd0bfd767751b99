package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"toc-generator/internal/config"
	"toc-generator/internal/di"
	"toc-generator/internal/usecase"
)

// ErrOutOfDate is returned by verify when the document needs regenerating.
var ErrOutOfDate = errors.New("document is out of date, run toc generate")

// NewVerifyCommand creates the verify subcommand.
func NewVerifyCommand(global *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the README matches the solution tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.loadConfig(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("output") {
					cfg.OutputPath = output
				}
			})
			if err != nil {
				return err
			}

			verifier, err := di.InitializeVerifier(cfg)
			if err != nil {
				return err
			}

			result, err := verifier.Verify(cmd.Context())
			if err != nil {
				return err
			}

			printVerification(cmd.OutOrStdout(), cfg.OutputPath, result)
			if result.OutOfDate {
				return ErrOutOfDate
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "document to check")
	return cmd
}

func printVerification(w io.Writer, path string, result *usecase.Verification) {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	warn := color.New(color.FgYellow)

	if !result.OutOfDate {
		ok.Fprintf(w, "%s is up to date\n", path)
		return
	}

	fail.Fprintf(w, "%s is out of date\n", path)
	for _, name := range result.Missing {
		fmt.Fprintf(w, "  %s %s\n", warn.Sprint("missing:"), name)
	}
	for _, name := range result.Extra {
		fmt.Fprintf(w, "  %s %s\n", warn.Sprint("removed:"), name)
	}
}
