package truthtable

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type Classification int

const (
	Contingency Classification = iota
	Tautology
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingency"
	}
}

type Summary struct {
	Rows      int
	TrueRows  int
	FalseRows int

	// share of rows for which the expression is true, between 0 and 1
	FractionTrue float64

	Classification Classification
}

// Summary counts the rows the expression is true for and classifies it as a
// tautology (always true), a contradiction (never true) or a contingency.
func (t *Table) Summary() (Summary, error) {
	results := lo.Map(t.Rows, func(row Row, _ int) float64 {
		if row.Result {
			return 1
		}
		return 0
	})
	fraction, err := stats.Mean(results)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize truth table: %w", err)
	}

	trueRows := lo.CountBy(t.Rows, func(row Row) bool {
		return row.Result
	})
	summary := Summary{
		Rows:         len(t.Rows),
		TrueRows:     trueRows,
		FalseRows:    len(t.Rows) - trueRows,
		FractionTrue: fraction,
	}

	switch trueRows {
	case len(t.Rows):
		summary.Classification = Tautology
	case 0:
		summary.Classification = Contradiction
	default:
		summary.Classification = Contingency
	}
	return summary, nil
}
