package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsError_Error(t *testing.T) {
	err := NewEmptyDataError("mean")
	assert.Equal(t, "EMPTY_DATA: cannot compute statistic: data is empty (statistic=mean)", err.Error())

	capErr := NewCapacityError(1000)
	assert.Equal(t, "CAPACITY_EXCEEDED: data size limit (1000) exceeded", capErr.Error())
}

func TestNewInsufficientDataError_Fields(t *testing.T) {
	err := NewInsufficientDataError("sample standard deviation", 1, 2)
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeInsufficientData, err.Code)
	assert.Equal(t, "sample standard deviation", err.Statistic)
	assert.Equal(t, "1", err.Details["count"])
	assert.Equal(t, "2", err.Details["required"])
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		capacity     bool
		empty        bool
		insufficient bool
	}{
		{"capacity", NewCapacityError(10), true, false, false},
		{"empty", NewEmptyDataError("median"), false, true, false},
		{"insufficient", NewInsufficientDataError("sample standard deviation", 1, 2), false, false, true},
		{"plain error", fmt.Errorf("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.capacity, IsCapacityError(tt.err))
			assert.Equal(t, tt.empty, IsEmptyDataError(tt.err))
			assert.Equal(t, tt.insufficient, IsInsufficientDataError(tt.err))
		})
	}
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("while summarizing: %w", NewEmptyDataError("range"))
	assert.True(t, IsEmptyDataError(wrapped), "predicates must see through wrapping")
	assert.False(t, IsCapacityError(wrapped))
}
