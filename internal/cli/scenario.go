package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/descstat/descstat/internal/harness"
)

// NewScenarioCommand creates the scenario command.
func NewScenarioCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario <file.yaml>",
		Short: "Run a scenario file",
		Long: `Load a YAML scenario file, run it against a fresh statistics engine,
and print the transcript. Exits 1 when any step expectation fails.

Example:
  descstat scenario ./scenarios/capacity-guard.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runScenario(opts *RootOptions, path string, cmd *cobra.Command) error {
	slog.Debug("loading scenario", "path", path)
	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	result, err := harness.Run(scenario, harness.UUIDv7Generator{})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out, Verbose: opts.Verbose}
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, result.Transcript())
	}

	if !result.Passed() {
		return NewExitError(ExitFailure, fmt.Sprintf("scenario %s failed with %d mismatch(es)", scenario.Name, len(result.Failures)))
	}
	return nil
}
