package tui

import (
	"fmt"
	"strings"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/samber/lo"
)

func (t *TUI) PrintNotations(expr *boolexpr.Expression) {
	fmt.Fprintln(t.output, "\nConverted Notations:")
	fmt.Fprintln(t.output, "-Postfix: "+expr.Postfix)
	fmt.Fprintln(t.output, "-Prefix: "+expr.Prefix)
}

func (t *TUI) PrintTableHeading() {
	fmt.Fprintln(t.output, "\nTruth Table:")
}

// PrintTable prints one tab-terminated column per variable followed by the
// result column.
func (t *TUI) PrintTable(table *truthtable.Table) {
	var sb strings.Builder

	for _, variable := range table.Variables {
		sb.WriteRune(variable)
		sb.WriteString("\t")
	}
	sb.WriteString("Result\n")

	for _, row := range table.Rows {
		cells := lo.Map(table.Values(row), func(value bool, _ int) string {
			return t.symbol(value) + "\t"
		})
		sb.WriteString(strings.Join(cells, ""))
		sb.WriteString(t.symbol(row.Result))
		sb.WriteString("\n")
	}

	fmt.Fprint(t.output, sb.String())
}

func (t *TUI) PrintSummary(summary truthtable.Summary) {
	fmt.Fprintln(t.output, "\nSummary:")
	fmt.Fprintf(t.output, "True rows: %d/%d (%.1f%%)\n", summary.TrueRows, summary.Rows, summary.FractionTrue*100)
	fmt.Fprintf(t.output, "Classification: %s\n", summary.Classification)
}

func (t *TUI) PrintEquivalences() {
	fmt.Fprintln(t.output, "\nLogical Operations and Equivalences:")
	for _, equivalence := range Equivalences {
		fmt.Fprintln(t.output, equivalence)
	}
}
