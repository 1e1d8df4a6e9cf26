package tui

import (
	"fmt"
	"log/slog"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/truthtable"
)

const Prompt = "Enter a logical expression in infix notation (EX: A & B | C: "

// Run reads one expression and prints its notations, its truth table and the
// list of equivalences.
//
// In strict mode a malformed expression is returned as an error before
// anything but the prompt is printed. Otherwise the problem is logged and the
// report shows whatever could be derived from the input.
func Run(t *TUI, cfg *config.Config) error {
	t.SetSymbols(cfg.TrueSymbol, cfg.FalseSymbol)

	infix, err := t.ReadExpression(Prompt)
	if err != nil {
		return fmt.Errorf("failed to read expression: %w", err)
	}
	slog.Debug("read expression", "expression", infix, "strict", cfg.Strict)

	expr, err := parse(infix, cfg.Strict)
	if err != nil {
		return err
	}
	t.PrintNotations(expr)

	t.PrintTableHeading()
	table, err := truthtable.Generate(expr,
		truthtable.WithParallelism(cfg.Workers),
		truthtable.WithParallelThreshold(cfg.ParallelThreshold),
	)
	if err != nil {
		if cfg.Strict {
			return err
		}
		slog.Error("failed to generate truth table", "expression", infix, "error", err)
	} else {
		t.PrintTable(table)

		if err := extras(t, table, cfg); err != nil {
			return err
		}
	}

	if cfg.ShowEquivalences {
		t.PrintEquivalences()
	}
	return nil
}

func parse(infix string, strict bool) (*boolexpr.Expression, error) {
	if strict {
		return boolexpr.NewStrict(infix)
	}

	if err := boolexpr.Validate(infix); err != nil {
		slog.Warn("expression is malformed, printing a best-effort result",
			"expression", infix,
			"error", err,
		)
	}
	return boolexpr.New(infix)
}

func extras(t *TUI, table *truthtable.Table, cfg *config.Config) error {
	if cfg.ShowSummary {
		summary, err := table.Summary()
		if err != nil {
			return err
		}
		t.PrintSummary(summary)
	}

	if cfg.CSVFile != "" {
		if err := table.WriteCSVFile(cfg.CSVFile, cfg.TrueSymbol, cfg.FalseSymbol); err != nil {
			return fmt.Errorf("failed to export truth table: %w", err)
		}
		slog.Info("wrote truth table", "file", cfg.CSVFile, "rows", len(table.Rows))
	}
	return nil
}
