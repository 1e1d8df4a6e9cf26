package truthtable

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"golang.org/x/sync/errgroup"
)

// MaxVariables bounds the number of variables a table can be generated for;
// the table grows as 2^n.
const MaxVariables = 20

// DefaultParallelThreshold is the number of variables from which rows are
// evaluated concurrently.
const DefaultParallelThreshold = 16

// rows evaluated by one goroutine in parallel mode
const chunkSize = 4096

// Row is one line of a table. Its variable values follow from Index, see
// Table.Values.
type Row struct {
	Index  int
	Result bool
}

type Table struct {
	Variables []rune
	Rows      []Row
}

type Option func(*generator)

type generator struct {
	workers           int
	parallelThreshold int
}

// WithParallelism sets the maximum number of goroutines evaluating rows.
// Values below 1 mean GOMAXPROCS.
func WithParallelism(workers int) Option {
	return func(g *generator) {
		if workers < 1 {
			workers = runtime.GOMAXPROCS(0)
		}
		g.workers = workers
	}
}

// WithParallelThreshold sets the variable count from which rows are evaluated
// concurrently.
func WithParallelThreshold(variables int) Option {
	return func(g *generator) {
		g.parallelThreshold = variables
	}
}

// Generate evaluates the expression under every assignment of its variables.
// Rows are ordered by index, and row i assigns the variable at position j the
// value of bit (n-1-j) of i, so the first variable changes slowest. An
// expression without variables gives a single row.
func Generate(expr *boolexpr.Expression, opts ...Option) (*Table, error) {
	n := len(expr.Variables)
	if n > MaxVariables {
		return nil, fmt.Errorf("expression '%s' has %d variables, at most %d are supported", expr.Infix, n, MaxVariables)
	}

	g := &generator{
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(g)
	}

	rows := make([]Row, 1<<n)
	parallel := n >= g.parallelThreshold && g.workers > 1
	slog.Debug("generating truth table",
		"expression", expr.Infix,
		"variables", n,
		"rows", len(rows),
		"parallel", parallel,
	)

	var err error
	if parallel {
		err = g.evaluateConcurrently(expr, rows)
	} else {
		err = evaluateRows(expr, rows, 0, len(rows))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate truth table for '%s': %w", expr.Infix, err)
	}

	return &Table{
		Variables: expr.Variables,
		Rows:      rows,
	}, nil
}

// Values returns the variable values of the row, in column order.
func (t *Table) Values(row Row) []bool {
	return Assignment(row.Index, len(t.Variables))
}

// Assignment returns the variable values of the given row in a table over n
// variables.
func Assignment(row, n int) []bool {
	values := make([]bool, n)
	for j := 0; j < n; j++ {
		values[j] = row&(1<<(n-1-j)) != 0
	}
	return values
}

func evaluateRows(expr *boolexpr.Expression, rows []Row, from, to int) error {
	n := len(expr.Variables)
	for i := from; i < to; i++ {
		values := Assignment(i, n)
		result, err := expr.Evaluate(values)
		if err != nil {
			return fmt.Errorf("failed evaluating row %d: %w", i, err)
		}
		rows[i] = Row{Index: i, Result: result}
	}
	return nil
}

// each goroutine fills its own range of rows, which keeps the table in order
func (g *generator) evaluateConcurrently(expr *boolexpr.Expression, rows []Row) error {
	var group errgroup.Group
	group.SetLimit(g.workers)

	for from := 0; from < len(rows); from += chunkSize {
		to := min(from+chunkSize, len(rows))
		group.Go(func() error {
			return evaluateRows(expr, rows, from, to)
		})
	}
	return group.Wait()
}
