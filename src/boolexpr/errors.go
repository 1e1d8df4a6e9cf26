package boolexpr

import (
	"fmt"
)

// UnknownVariableError is returned when an unknown variable is encountered.
type UnknownVariableError struct {
	Variable rune
}

// NewUnknownVariableError creates a new UnknownVariableError with the given variable.
func NewUnknownVariableError(variable rune) error {
	return &UnknownVariableError{Variable: variable}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %c", e.Variable)
}

// MalformedExpressionError is returned when an expression cannot be validated
// or evaluated. Position is the rune offset of the offending character in
// Expression, or -1 when the problem isn't tied to a single character.
type MalformedExpressionError struct {
	Expression string
	Position   int
	Reason     string
}

// NewMalformedExpressionError creates a new MalformedExpressionError.
func NewMalformedExpressionError(expression string, position int, reason string) error {
	return &MalformedExpressionError{
		Expression: expression,
		Position:   position,
		Reason:     reason,
	}
}

func (e MalformedExpressionError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("malformed expression '%s': %s", e.Expression, e.Reason)
	}
	return fmt.Sprintf("malformed expression '%s' at position %d: %s", e.Expression, e.Position, e.Reason)
}
