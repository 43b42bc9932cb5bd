package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_Text(t *testing.T) {
	out, err := executeCommand(t, "demo")
	require.NoError(t, err, "bundled scenarios must pass")

	for _, name := range []string{
		"basic-statistics",
		"complete-summary",
		"dynamic-data",
		"edge-cases",
		"multiple-modes",
		"exam-scores",
	} {
		assert.Contains(t, out, "scenario: "+name)
	}
	assert.NotContains(t, out, "result: fail")
}

func TestDemo_JSON(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "demo")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	results, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, results, 6)
}

func TestDemo_RejectsArgs(t *testing.T) {
	_, err := executeCommand(t, "demo", "extra")
	assert.Error(t, err)
}
