package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/descstat/descstat/internal/engine"
)

// Scenario defines a demonstration scenario: an ordered sequence of
// engine operations with optional per-step expectations.
type Scenario struct {
	// Name uniquely identifies this scenario (also the golden file name).
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description,omitempty"`

	// Capacity bounds the engine's observation store.
	// Zero means engine.DefaultCapacity.
	Capacity int `yaml:"capacity,omitempty"`

	// RunToken is an optional fixed run token for deterministic
	// transcripts. If empty, the runner's TokenGenerator supplies one.
	RunToken string `yaml:"run_token,omitempty"`

	// Steps are executed in order against a fresh engine.
	Steps []Step `yaml:"steps"`
}

// Step operations. Mutations drive the store; the rest are reads.
const (
	OpAdd     = "add"
	OpAddMany = "add_many"
	OpClear   = "clear"
	OpCount   = "count"
	OpMean    = "mean"
	OpMedian  = "median"
	OpModes   = "modes"
	OpStdDev  = "stddev"
	OpRange   = "range"
	OpSummary = "summary"
)

// Step is a single engine operation.
type Step struct {
	// Op names the operation (see Op* constants).
	Op string `yaml:"op"`

	// Value is the observation for add.
	Value *int `yaml:"value,omitempty"`

	// Values are the observations for add_many.
	Values []int `yaml:"values,omitempty"`

	// Population selects the std dev variant for stddev.
	Population bool `yaml:"population,omitempty"`

	// Expect optionally validates the step's outcome.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect validates a step outcome. Exactly one of Float, Int, Ints, or
// Error should be set.
type Expect struct {
	// Float is the expected value for mean, median, and stddev.
	Float *float64 `yaml:"float,omitempty"`

	// Tolerance widens the float comparison. Defaults to 1e-9.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Int is the expected value for count and range.
	Int *int `yaml:"int,omitempty"`

	// Ints is the expected mode set.
	Ints []int `yaml:"ints,omitempty"`

	// Error is the expected engine error code
	// (CAPACITY_EXCEEDED, EMPTY_DATA, INSUFFICIENT_DATA).
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario unmarshals and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var validOps = map[string]bool{
	OpAdd:     true,
	OpAddMany: true,
	OpClear:   true,
	OpCount:   true,
	OpMean:    true,
	OpMedian:  true,
	OpModes:   true,
	OpStdDev:  true,
	OpRange:   true,
	OpSummary: true,
}

var validErrorCodes = map[string]bool{
	string(engine.ErrCodeCapacityExceeded): true,
	string(engine.ErrCodeEmptyData):        true,
	string(engine.ErrCodeInsufficientData): true,
}

// Validate checks structural soundness before a scenario runs.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("scenario %q: capacity must not be negative", s.Name)
	}
	for i, step := range s.Steps {
		if !validOps[step.Op] {
			return fmt.Errorf("scenario %q step %d: unknown op %q", s.Name, i+1, step.Op)
		}
		if step.Op == OpAdd && step.Value == nil {
			return fmt.Errorf("scenario %q step %d: add requires a value", s.Name, i+1)
		}
		if step.Op == OpAddMany && len(step.Values) == 0 {
			return fmt.Errorf("scenario %q step %d: add_many requires values", s.Name, i+1)
		}
		if step.Expect != nil && step.Expect.Error != "" && !validErrorCodes[step.Expect.Error] {
			return fmt.Errorf("scenario %q step %d: unknown error code %q", s.Name, i+1, step.Expect.Error)
		}
	}
	return nil
}
