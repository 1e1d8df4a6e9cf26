package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteCSV writes the table with a header row of variable names followed by
// "Result", rendering values with the given symbols.
func (t *Table) WriteCSV(w io.Writer, trueSymbol, falseSymbol string) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, len(t.Variables)+1)
	for _, variable := range t.Variables {
		header = append(header, string(variable))
	}
	header = append(header, "Result")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header %v: %w", header, err)
	}

	symbol := func(value bool) string {
		if value {
			return trueSymbol
		}
		return falseSymbol
	}
	for _, row := range t.Rows {
		record := make([]string, 0, len(t.Variables)+1)
		for _, value := range t.Values(row) {
			record = append(record, symbol(value))
		}
		record = append(record, symbol(row.Result))

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Index, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile is WriteCSV to a file, which is created or truncated.
func (t *Table) WriteCSVFile(path, trueSymbol, falseSymbol string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = path
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	if err := t.WriteCSV(file, trueSymbol, falseSymbol); err != nil {
		return fmt.Errorf("failed to write truth table to %s: %w", absPath, err)
	}
	return file.Close()
}
