package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadExpression(t *testing.T) {
	testCases := map[string]string{
		"A & B | C\n":   "A & B | C",
		"A&B\r\n":       "A&B",
		"A&B":           "A&B",
		"\n":            "",
		"A\nB&C\n":      "A",
		"  (A | B)  \n": "  (A | B)  ",
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			var output bytes.Buffer
			sut := NewWithIO(strings.NewReader(input), &output)

			expression, err := sut.ReadExpression("question?")
			require.NoError(t, err)

			assert.Equal(t, expected, expression)
			assert.Equal(t, "question?\n", output.String())
		})
	}
}

func TestReadExpression_NoInput(t *testing.T) {
	sut := NewWithIO(strings.NewReader(""), io.Discard)

	_, err := sut.ReadExpression("question?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrintTable(t *testing.T) {
	expr, err := boolexpr.New("A|B")
	require.NoError(t, err)
	table, err := truthtable.Generate(expr)
	require.NoError(t, err)

	t.Run("default symbols", func(t *testing.T) {
		var output bytes.Buffer
		sut := NewWithIO(strings.NewReader(""), &output)

		sut.PrintTable(table)

		assert.Equal(t, "A\tB\tResult\n"+
			"F\tF\tF\n"+
			"F\tT\tT\n"+
			"T\tF\tT\n"+
			"T\tT\tT\n", output.String())
	})

	t.Run("custom symbols", func(t *testing.T) {
		var output bytes.Buffer
		sut := NewWithIO(strings.NewReader(""), &output)
		sut.SetSymbols("1", "0")

		sut.PrintTable(table)

		assert.Equal(t, "A\tB\tResult\n0\t0\t0\n0\t1\t1\n1\t0\t1\n1\t1\t1\n", output.String())
	})
}

func TestPrintTable_NoVariables(t *testing.T) {
	expr, err := boolexpr.New("1%1")
	require.NoError(t, err)
	table, err := truthtable.Generate(expr)
	require.NoError(t, err)

	var output bytes.Buffer
	NewWithIO(strings.NewReader(""), &output).PrintTable(table)

	assert.Equal(t, "Result\nF\n", output.String())
}

func TestPrintNotations(t *testing.T) {
	expr, err := boolexpr.New("A&B|C")
	require.NoError(t, err)

	var output bytes.Buffer
	NewWithIO(strings.NewReader(""), &output).PrintNotations(expr)

	assert.Equal(t, "\nConverted Notations:\n-Postfix: AB&C|\n-Prefix: |&ABC\n", output.String())
}

func TestPrintSummary(t *testing.T) {
	var output bytes.Buffer
	NewWithIO(strings.NewReader(""), &output).PrintSummary(truthtable.Summary{
		Rows:           4,
		TrueRows:       1,
		FalseRows:      3,
		FractionTrue:   0.25,
		Classification: truthtable.Contingency,
	})

	assert.Equal(t, "\nSummary:\nTrue rows: 1/4 (25.0%)\nClassification: contingency\n", output.String())
}

func TestPrintEquivalences(t *testing.T) {
	var output bytes.Buffer
	NewWithIO(strings.NewReader(""), &output).PrintEquivalences()

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Logical Operations and Equivalences:", lines[0])
	assert.Equal(t, Equivalences, lines[1:])
}
