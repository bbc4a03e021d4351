package app

import (
	"accuracycheck/domain/report"
	"accuracycheck/domain/verdict"

	"github.com/montanaflynn/stats"
)

// Summary aggregates a report table for logging and console output
type Summary struct {
	Rows   int
	Passed int
	Failed int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize computes pass counts and score statistics. Statistics stay zero for an empty table.
func Summarize(table *report.Table) (Summary, error) {
	s := Summary{Rows: table.Len()}
	for _, r := range table.Rows {
		if r.Verdict == verdict.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	if s.Rows == 0 {
		return s, nil
	}

	data := stats.Float64Data(table.Scores())
	var err error
	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}
	if s.Median, err = data.Median(); err != nil {
		return s, err
	}
	if s.Min, err = data.Min(); err != nil {
		return s, err
	}
	if s.Max, err = data.Max(); err != nil {
		return s, err
	}
	return s, nil
}
