package harness

// Builtins returns the bundled demonstration scenarios. Each carries a
// fixed run token so transcripts and golden files stay deterministic.
func Builtins() []*Scenario {
	return []*Scenario{
		{
			Name:        "basic-statistics",
			Description: "Mean, median and mode over a small dataset.",
			RunToken:    "demo-basic-statistics",
			Steps: []Step{
				{Op: OpAddMany, Values: []int{1, 2, 2, 3, 4, 5, 5, 5, 6}},
				{Op: OpMean, Expect: &Expect{Float: floatp(33.0 / 9.0)}},
				{Op: OpMedian, Expect: &Expect{Float: floatp(4)}},
				{Op: OpModes, Expect: &Expect{Ints: []int{5}}},
			},
		},
		{
			Name:        "complete-summary",
			Description: "Every statistic rendered at once.",
			RunToken:    "demo-complete-summary",
			Steps: []Step{
				{Op: OpAddMany, Values: []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
				{Op: OpSummary},
			},
		},
		{
			Name:        "dynamic-data",
			Description: "Statistics recomputed as observations arrive.",
			RunToken:    "demo-dynamic-data",
			Steps: []Step{
				{Op: OpAdd, Value: intp(1)},
				{Op: OpAdd, Value: intp(2)},
				{Op: OpAdd, Value: intp(3)},
				{Op: OpMean, Expect: &Expect{Float: floatp(2)}},
				{Op: OpAdd, Value: intp(4)},
				{Op: OpAdd, Value: intp(5)},
				{Op: OpMean, Expect: &Expect{Float: floatp(3)}},
				{Op: OpAddMany, Values: []int{6, 7, 8}},
				{Op: OpSummary},
			},
		},
		{
			Name:        "edge-cases",
			Description: "Empty store and a single observation.",
			RunToken:    "demo-edge-cases",
			Steps: []Step{
				{Op: OpMean, Expect: &Expect{Error: "EMPTY_DATA"}},
				{Op: OpCount, Expect: &Expect{Int: intp(0)}},
				{Op: OpAdd, Value: intp(42)},
				{Op: OpMean, Expect: &Expect{Float: floatp(42)}},
				{Op: OpMedian, Expect: &Expect{Float: floatp(42)}},
				{Op: OpModes, Expect: &Expect{Ints: []int{42}}},
				{Op: OpStdDev, Expect: &Expect{Error: "INSUFFICIENT_DATA"}},
				{Op: OpStdDev, Population: true, Expect: &Expect{Float: floatp(0)}},
			},
		},
		{
			Name:        "multiple-modes",
			Description: "Every value at the max frequency is a mode.",
			RunToken:    "demo-multiple-modes",
			Steps: []Step{
				{Op: OpAddMany, Values: []int{1, 1, 2, 2, 3, 3, 4}},
				{Op: OpModes, Expect: &Expect{Ints: []int{1, 2, 3}}},
			},
		},
		{
			Name:        "exam-scores",
			Description: "Exam score analysis over twelve students.",
			RunToken:    "demo-exam-scores",
			Steps: []Step{
				{Op: OpAddMany, Values: []int{85, 92, 78, 92, 85, 67, 85, 92, 74, 88, 90, 85}},
				{Op: OpCount, Expect: &Expect{Int: intp(12)}},
				{Op: OpMean, Expect: &Expect{Float: floatp(1013.0 / 12.0)}},
				{Op: OpMedian, Expect: &Expect{Float: floatp(85)}},
				{Op: OpModes, Expect: &Expect{Ints: []int{85}}},
				{Op: OpRange, Expect: &Expect{Int: intp(25)}},
				{Op: OpStdDev},
				{Op: OpSummary},
			},
		},
	}
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }
