// Package harness runs demonstration scenarios against the statistics
// engine and records deterministic transcripts.
//
// Each scenario runs against a fresh Engine for isolation. Steps execute
// in order; engine errors are recoverable, so an error never stops the
// run - a step that fails without an expected error code is recorded as
// a failure and execution continues. Transcripts are stable text,
// suitable for golden-file comparison.
package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/descstat/descstat/internal/engine"
	"github.com/descstat/descstat/internal/report"
)

// Result is the outcome of running one scenario.
type Result struct {
	ScenarioName string
	RunToken     string
	Entries      []Entry
	Failures     []string
}

// Passed reports whether every step met its expectations.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Entry records one executed step.
type Entry struct {
	// Op is the rendered step label, e.g. "add 5" or "stddev sample".
	Op string

	// Detail is the rendered outcome for a successful step, or for a
	// failure the scenario expected.
	Detail string

	// Err is the error text of an unexpected failure.
	Err string
}

// Run executes a scenario against a fresh engine.
//
// The scenario's own RunToken wins when set; otherwise the generator
// supplies one. The returned error covers scenario-level problems
// (validation); step-level mismatches land in Result.Failures.
func Run(scenario *Scenario, gen TokenGenerator) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	var opts []engine.Option
	if scenario.Capacity > 0 {
		opts = append(opts, engine.WithCapacity(scenario.Capacity))
	}
	eng := engine.New(opts...)

	token := scenario.RunToken
	if token == "" {
		token = gen.Generate()
	}
	slog.Debug("running scenario", "name", scenario.Name, "run", token, "steps", len(scenario.Steps))

	result := &Result{ScenarioName: scenario.Name, RunToken: token}
	for i, step := range scenario.Steps {
		entry, failures := executeStep(eng, i+1, step)
		result.Entries = append(result.Entries, entry)
		result.Failures = append(result.Failures, failures...)
	}

	slog.Debug("scenario finished", "name", scenario.Name, "passed", result.Passed(), "failures", len(result.Failures))
	return result, nil
}

// executeStep runs one step and checks its expectations.
func executeStep(eng *engine.Engine, idx int, step Step) (Entry, []string) {
	entry := Entry{Op: describeStep(step)}
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf("step %d: %s", idx, fmt.Sprintf(format, args...)))
	}

	var (
		gotFloat *float64
		gotInt   *int
		gotInts  []int
		err      error
	)

	switch step.Op {
	case OpAdd:
		err = eng.Add(*step.Value)
		if err == nil {
			entry.Detail = fmt.Sprintf("ok (count=%d)", eng.Count())
		}
	case OpAddMany:
		added := 0
		for _, r := range eng.AddValues(step.Values) {
			if r == nil {
				added++
			} else if err == nil {
				err = r
			}
		}
		if err == nil {
			entry.Detail = fmt.Sprintf("added %d/%d (count=%d)", added, len(step.Values), eng.Count())
		}
	case OpClear:
		eng.Clear()
		entry.Detail = fmt.Sprintf("ok (count=%d)", eng.Count())
	case OpCount:
		n := eng.Count()
		gotInt = &n
		entry.Detail = strconv.Itoa(n)
	case OpMean:
		var v float64
		if v, err = eng.Mean(); err == nil {
			gotFloat = &v
			entry.Detail = formatFloat(v)
		}
	case OpMedian:
		var v float64
		if v, err = eng.Median(); err == nil {
			gotFloat = &v
			entry.Detail = formatFloat(v)
		}
	case OpModes:
		var vs []int
		if vs, err = eng.Modes(); err == nil {
			gotInts = vs
			entry.Detail = fmt.Sprintf("%v", vs)
		}
	case OpStdDev:
		var v float64
		if v, err = eng.StdDev(step.Population); err == nil {
			gotFloat = &v
			entry.Detail = formatFloat(v)
		}
	case OpRange:
		var v int
		if v, err = eng.Range(); err == nil {
			gotInt = &v
			entry.Detail = strconv.Itoa(v)
		}
	case OpSummary:
		entry.Detail = strings.TrimRight(report.String(eng), "\n")
	}

	if err != nil {
		code := errorCode(err)
		if step.Expect != nil && step.Expect.Error != "" {
			if code == step.Expect.Error {
				entry.Detail = fmt.Sprintf("error %s (expected)", code)
			} else {
				entry.Err = err.Error()
				fail("expected error %s, got %s", step.Expect.Error, code)
			}
		} else {
			entry.Err = err.Error()
			fail("unexpected error: %v", err)
		}
		return entry, failures
	}

	if ex := step.Expect; ex != nil {
		switch {
		case ex.Error != "":
			fail("expected error %s, step succeeded", ex.Error)
		case ex.Float != nil:
			if gotFloat == nil {
				fail("expected a float result from %s", step.Op)
			} else if tol := floatTolerance(ex); math.Abs(*gotFloat-*ex.Float) > tol {
				fail("expected %s, got %s", formatFloat(*ex.Float), formatFloat(*gotFloat))
			}
		case ex.Int != nil:
			if gotInt == nil {
				fail("expected an int result from %s", step.Op)
			} else if *gotInt != *ex.Int {
				fail("expected %d, got %d", *ex.Int, *gotInt)
			}
		case ex.Ints != nil:
			if !slices.Equal(gotInts, ex.Ints) {
				fail("expected %v, got %v", ex.Ints, gotInts)
			}
		}
	}
	return entry, failures
}

func floatTolerance(ex *Expect) float64 {
	if ex.Tolerance > 0 {
		return ex.Tolerance
	}
	return 1e-9
}

func describeStep(step Step) string {
	switch step.Op {
	case OpAdd:
		return fmt.Sprintf("add %d", *step.Value)
	case OpAddMany:
		return fmt.Sprintf("add_many %v", step.Values)
	case OpStdDev:
		if step.Population {
			return "stddev population"
		}
		return "stddev sample"
	default:
		return step.Op
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func errorCode(err error) string {
	var se *engine.StatsError
	if errors.As(err, &se) {
		return string(se.Code)
	}
	return ""
}

// Transcript renders the result as deterministic text. Multi-line step
// details (summary) are indented under their step line.
func (r *Result) Transcript() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.ScenarioName)
	fmt.Fprintf(&b, "run: %s\n", r.RunToken)
	for i, entry := range r.Entries {
		label := fmt.Sprintf("%d. %s", i+1, entry.Op)
		switch {
		case entry.Err != "":
			fmt.Fprintf(&b, "%s -> error: %s\n", label, entry.Err)
		case strings.Contains(entry.Detail, "\n"):
			fmt.Fprintf(&b, "%s ->\n", label)
			for _, line := range strings.Split(entry.Detail, "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		default:
			fmt.Fprintf(&b, "%s -> %s\n", label, entry.Detail)
		}
	}
	if r.Passed() {
		b.WriteString("result: pass\n")
	} else {
		b.WriteString("result: fail\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}
	return b.String()
}
