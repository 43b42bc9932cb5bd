package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/descstat/descstat/internal/engine"
	"github.com/descstat/descstat/internal/report"
)

// SummarizeOptions holds flags for the summarize command.
type SummarizeOptions struct {
	*RootOptions
	Input    string
	Capacity int
	Outliers bool
}

// NewSummarizeCommand creates the summarize command.
func NewSummarizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SummarizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "summarize [values...]",
		Short: "Summarize an integer dataset",
		Long: `Feed integer observations into the statistics engine and print the
summary report (count, min/max/range, mean, median, mode set, standard
deviations).

Values come from the arguments, from --input, or both (arguments first).

Example:
  descstat summarize 10 20 30 40 50
  descstat summarize --input scores.txt --outliers
  descstat summarize --format json 1 2 2 3`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "file with whitespace-separated integers")
	cmd.Flags().IntVar(&opts.Capacity, "capacity", 0, fmt.Sprintf("observation store bound (default %d)", engine.DefaultCapacity))
	cmd.Flags().BoolVar(&opts.Outliers, "outliers", false, "report values beyond 2 standard deviations (text format only)")

	return cmd
}

func runSummarize(opts *SummarizeOptions, args []string, cmd *cobra.Command) error {
	values, err := collectValues(args, opts.Input)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return NewExitError(ExitCommandError, "no values provided")
	}

	var engOpts []engine.Option
	if opts.Capacity > 0 {
		engOpts = append(engOpts, engine.WithCapacity(opts.Capacity))
	}
	eng := engine.New(engOpts...)

	rejected := 0
	for _, res := range eng.AddValues(values) {
		if res != nil {
			rejected++
		}
	}
	if rejected > 0 {
		slog.Warn("observations rejected", "rejected", rejected, "capacity", eng.Capacity())
	}
	slog.Debug("dataset loaded", "count", eng.Count())

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
		return formatter.Success(report.Build(eng))
	}

	out := cmd.OutOrStdout()
	if err := report.Render(out, eng); err != nil {
		return err
	}
	if opts.Outliers {
		return renderOutliers(out, eng)
	}
	return nil
}

// collectValues parses integers from the arguments and, when set, an
// input file of whitespace-separated integers.
func collectValues(args []string, input string) ([]int, error) {
	tokens := make([]string, 0, len(args))
	tokens = append(tokens, args...)

	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to read input file", err)
		}
		tokens = append(tokens, strings.Fields(string(data))...)
	}

	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid integer %q", tok))
		}
		values = append(values, v)
	}
	return values, nil
}

// renderOutliers reports observations more than two sample standard
// deviations from the mean, using only the engine's public reads.
func renderOutliers(w io.Writer, eng *engine.Engine) error {
	mean, err := eng.Mean()
	if err != nil {
		return err
	}
	sd, err := eng.StdDev(false)
	if err != nil {
		if engine.IsInsufficientDataError(err) {
			_, werr := fmt.Fprintln(w, "Outliers: N/A (need at least 2 data points)")
			return werr
		}
		return err
	}

	lower := mean - 2*sd
	upper := mean + 2*sd
	fmt.Fprintf(w, "Outlier Bounds (2 std dev): %.2f to %.2f\n", lower, upper)

	var outliers []int
	for _, v := range eng.Values() {
		if float64(v) < lower || float64(v) > upper {
			outliers = append(outliers, v)
		}
	}
	if len(outliers) == 0 {
		_, werr := fmt.Fprintln(w, "No significant outliers found.")
		return werr
	}
	_, werr := fmt.Fprintf(w, "Potential Outliers: %s\n", report.FormatInts(outliers))
	return werr
}
