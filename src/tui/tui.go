package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type TUI struct {
	input  *bufio.Reader
	output io.Writer

	trueSymbol  string
	falseSymbol string
}

func New() *TUI {
	return NewWithIO(os.Stdin, os.Stdout)
}

func NewWithIO(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:       bufio.NewReader(input),
		output:      output,
		trueSymbol:  "T",
		falseSymbol: "F",
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// SetSymbols changes how true and false are rendered in the truth table.
func (t *TUI) SetSymbols(trueSymbol, falseSymbol string) {
	t.trueSymbol = trueSymbol
	t.falseSymbol = falseSymbol
}

// ReadExpression prints the question on its own line and returns the next
// line of input without its line ending. Only input that ends before anything
// could be read is an error.
func (t *TUI) ReadExpression(question string) (string, error) {
	fmt.Fprintln(t.output, question)

	line, err := t.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (t *TUI) symbol(value bool) string {
	if value {
		return t.trueSymbol
	}
	return t.falseSymbol
}
