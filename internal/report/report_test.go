package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descstat/descstat/internal/engine"
)

func TestBuild_Empty(t *testing.T) {
	s := Build(engine.New())

	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.Min)
	assert.Nil(t, s.Max)
	assert.Nil(t, s.Range)
	assert.Nil(t, s.Mean)
	assert.Nil(t, s.Median)
	assert.Nil(t, s.Modes)
	assert.Nil(t, s.StdDevSample)
	assert.Nil(t, s.StdDevPopulation)
}

func TestBuild_SingleObservation(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Add(42))

	s := Build(e)
	assert.Equal(t, 1, s.Count)
	require.NotNil(t, s.Mean)
	assert.Equal(t, 42.0, *s.Mean)
	assert.Nil(t, s.StdDevSample, "sample std dev is undefined at n=1")
	require.NotNil(t, s.StdDevPopulation)
	assert.Equal(t, 0.0, *s.StdDevPopulation)
}

func TestBuild_Full(t *testing.T) {
	e := engine.New()
	e.AddValues([]int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})

	s := Build(e)
	assert.Equal(t, 10, s.Count)
	require.NotNil(t, s.Min)
	assert.Equal(t, 10, *s.Min)
	require.NotNil(t, s.Max)
	assert.Equal(t, 100, *s.Max)
	require.NotNil(t, s.Range)
	assert.Equal(t, 90, *s.Range)
	require.NotNil(t, s.Mean)
	assert.Equal(t, 55.0, *s.Mean)
	require.NotNil(t, s.Median)
	assert.Equal(t, 55.0, *s.Median)
	assert.Len(t, s.Modes, 10, "all-unique data makes every value a mode")
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "Statistics Summary: no data available\n", String(engine.New()))
}

func TestRender_Full(t *testing.T) {
	e := engine.New()
	e.AddValues([]int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})

	want := strings.Join([]string{
		"Statistics Summary:",
		"Data Points: 10",
		"Min: 10, Max: 100, Range: 90",
		"Mean: 55.0000",
		"Median: 55.0",
		"Mode(s): 10, 20, 30, 40, 50, 60, 70, 80, 90, 100",
		"Sample Std Dev: 30.2765",
		"Population Std Dev: 28.7228",
		"",
	}, "\n")
	assert.Equal(t, want, String(e))
}

func TestRender_SampleStdDevNA(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Add(42))

	out := String(e)
	assert.Contains(t, out, "Sample Std Dev: N/A")
	assert.Contains(t, out, "Population Std Dev: 0.0000")
	assert.Contains(t, out, "Median: 42.0")
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "", FormatInts(nil))
	assert.Equal(t, "7", FormatInts([]int{7}))
	assert.Equal(t, "1, 2, 3", FormatInts([]int{1, 2, 3}))
}
