package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/descstat/descstat/internal/harness"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the bundled demonstration scenarios",
		Long: `Run the bundled demonstration scenarios against the statistics engine
and print their transcripts: basic statistics, a complete summary,
dynamic data manipulation, edge cases, multiple modes, and an exam
score analysis.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}
	return cmd
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	failed := 0

	var results []*harness.Result
	for _, scenario := range harness.Builtins() {
		slog.Debug("running demo scenario", "name", scenario.Name)
		result, err := harness.Run(scenario, harness.UUIDv7Generator{})
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to run scenario %s", scenario.Name), err)
		}
		if !result.Passed() {
			failed++
		}
		results = append(results, result)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out, Verbose: opts.Verbose}
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for i, result := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, result.Transcript())
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d demo scenario(s) failed", failed))
	}
	return nil
}
