package engine

import (
	"errors"
	"fmt"
)

// StatsError represents a recoverable condition reported by the engine.
//
// Engine errors include:
//   - Capacity exceeded: an Add was attempted against a full store
//   - Empty data: a statistic was requested with zero observations
//   - Insufficient data: sample standard deviation with fewer than 2 points
//
// StatsError includes structured fields for diagnostics. Every error is
// returned to the immediate caller and never aborts anything; the engine
// state (observations and cache slots alike) is unchanged by a failing
// operation.
type StatsError struct {
	// Code identifies the error category.
	Code StatsErrorCode

	// Message is a human-readable description.
	Message string

	// Statistic names the requested statistic, empty for mutations.
	Statistic string

	// Details contains additional context.
	Details map[string]string
}

// StatsErrorCode categorizes engine errors.
type StatsErrorCode string

const (
	// ErrCodeCapacityExceeded indicates an Add against a full store.
	ErrCodeCapacityExceeded StatsErrorCode = "CAPACITY_EXCEEDED"

	// ErrCodeEmptyData indicates a statistic read with zero observations.
	ErrCodeEmptyData StatsErrorCode = "EMPTY_DATA"

	// ErrCodeInsufficientData indicates a statistic that needs more
	// observations than the store holds (sample std dev with n < 2).
	ErrCodeInsufficientData StatsErrorCode = "INSUFFICIENT_DATA"
)

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Statistic != "" {
		return fmt.Sprintf("%s: %s (statistic=%s)", e.Code, e.Message, e.Statistic)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCapacityError returns true if the error is a capacity overflow.
// Uses errors.As to handle wrapped errors.
func IsCapacityError(err error) bool {
	var se *StatsError
	if errors.As(err, &se) {
		return se.Code == ErrCodeCapacityExceeded
	}
	return false
}

// IsEmptyDataError returns true if the error is an empty-store read.
// Uses errors.As to handle wrapped errors.
func IsEmptyDataError(err error) bool {
	var se *StatsError
	if errors.As(err, &se) {
		return se.Code == ErrCodeEmptyData
	}
	return false
}

// IsInsufficientDataError returns true if the error reports too few
// observations for the requested statistic.
// Uses errors.As to handle wrapped errors.
func IsInsufficientDataError(err error) bool {
	var se *StatsError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInsufficientData
	}
	return false
}

// NewCapacityError creates a StatsError for an Add against a full store.
func NewCapacityError(capacity int) *StatsError {
	return &StatsError{
		Code:    ErrCodeCapacityExceeded,
		Message: fmt.Sprintf("data size limit (%d) exceeded", capacity),
		Details: map[string]string{
			"capacity": fmt.Sprintf("%d", capacity),
		},
	}
}

// NewEmptyDataError creates a StatsError for a read of an empty store.
func NewEmptyDataError(statistic string) *StatsError {
	return &StatsError{
		Code:      ErrCodeEmptyData,
		Message:   "cannot compute statistic: data is empty",
		Statistic: statistic,
	}
}

// NewInsufficientDataError creates a StatsError for a statistic that
// needs at least required observations.
func NewInsufficientDataError(statistic string, count, required int) *StatsError {
	return &StatsError{
		Code:      ErrCodeInsufficientData,
		Message:   fmt.Sprintf("need at least %d data points, have %d", required, count),
		Statistic: statistic,
		Details: map[string]string{
			"count":    fmt.Sprintf("%d", count),
			"required": fmt.Sprintf("%d", required),
		},
	}
}
