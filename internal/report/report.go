// Package report renders engine statistics as text. It is a thin
// consumer: it reaches the engine only through its public reads and
// never sees cache internals. Its exact output is not a contract of
// the engine.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/descstat/descstat/internal/engine"
)

// Summary is a snapshot of every statistic the engine exposes.
// A nil field means the statistic could not be computed: every field is
// nil for an empty store, and StdDevSample is nil below two
// observations.
type Summary struct {
	Count            int      `json:"count"`
	Min              *int     `json:"min,omitempty"`
	Max              *int     `json:"max,omitempty"`
	Range            *int     `json:"range,omitempty"`
	Mean             *float64 `json:"mean,omitempty"`
	Median           *float64 `json:"median,omitempty"`
	Modes            []int    `json:"modes,omitempty"`
	StdDevSample     *float64 `json:"std_dev_sample,omitempty"`
	StdDevPopulation *float64 `json:"std_dev_population,omitempty"`
}

// Build assembles a Summary from the engine's public reads. Statistic
// errors are all recoverable; they simply leave the field nil.
func Build(eng *engine.Engine) Summary {
	s := Summary{Count: eng.Count()}

	if v, err := eng.Min(); err == nil {
		s.Min = &v
	}
	if v, err := eng.Max(); err == nil {
		s.Max = &v
	}
	if v, err := eng.Range(); err == nil {
		s.Range = &v
	}
	if v, err := eng.Mean(); err == nil {
		s.Mean = &v
	}
	if v, err := eng.Median(); err == nil {
		s.Median = &v
	}
	if v, err := eng.Modes(); err == nil {
		s.Modes = v
	}
	if v, err := eng.StdDev(false); err == nil {
		s.StdDevSample = &v
	}
	if v, err := eng.StdDev(true); err == nil {
		s.StdDevPopulation = &v
	}
	return s
}

// Render writes the human-readable summary.
//
//	Statistics Summary:
//	Data Points: 12
//	Min: 67, Max: 92, Range: 25
//	Mean: 84.4167
//	Median: 85.0
//	Mode(s): 85
//	Sample Std Dev: 7.8098
//	Population Std Dev: 7.4773
//
// An empty engine renders a single "no data available" line. A sample
// std dev that cannot be computed renders as N/A.
func Render(w io.Writer, eng *engine.Engine) error {
	s := Build(eng)
	if s.Count == 0 {
		_, err := fmt.Fprintln(w, "Statistics Summary: no data available")
		return err
	}

	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "Statistics Summary:\n"); err != nil {
		return err
	}
	p.Fprintf(w, "Data Points: %d\n", s.Count)
	p.Fprintf(w, "Min: %d, Max: %d, Range: %d\n", *s.Min, *s.Max, *s.Range)
	p.Fprintf(w, "Mean: %.4f\n", *s.Mean)
	p.Fprintf(w, "Median: %.1f\n", *s.Median)
	p.Fprintf(w, "Mode(s): %s\n", FormatInts(s.Modes))
	if s.StdDevSample != nil {
		p.Fprintf(w, "Sample Std Dev: %.4f\n", *s.StdDevSample)
	} else {
		p.Fprintf(w, "Sample Std Dev: N/A\n")
	}
	_, err := p.Fprintf(w, "Population Std Dev: %.4f\n", *s.StdDevPopulation)
	return err
}

// String renders the summary for an engine into a string.
func String(eng *engine.Engine) string {
	var b strings.Builder
	_ = Render(&b, eng)
	return b.String()
}

// FormatInts joins integers with ", " for display.
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
