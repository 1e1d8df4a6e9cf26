package boolexpr

import (
	"fmt"
)

// Expression holds an infix expression together with the notations and
// variables derived from it. It is never modified after creation.
type Expression struct {
	Infix     string
	Postfix   string
	Prefix    string
	Variables []rune
}

// New creates a new solvable boolean expression based on the given input
// string. Malformed input is accepted; it produces whatever the conversions
// make of it and fails when evaluated, if at all.
// Example usage:
//
//	expr, err := boolexpr.New("A & (B | C)")
//	if err != nil {
//		log.Fatalf("failed to create expression: %v", err)
//	}
//	fmt.Println(expr.Postfix) // Output: ABC|&
func New(infix string) (*Expression, error) {
	return &Expression{
		Infix:     infix,
		Postfix:   ToPostfix(infix),
		Prefix:    ToPrefix(infix),
		Variables: ExtractVariables(infix),
	}, nil
}

// NewStrict is like New but first checks the expression with Validate.
func NewStrict(infix string) (*Expression, error) {
	if err := Validate(infix); err != nil {
		return nil, fmt.Errorf("failed to create expression: %w", err)
	}
	return New(infix)
}

// Evaluate computes the expression with values[i] assigned to e.Variables[i].
func (e *Expression) Evaluate(values []bool) (bool, error) {
	return Evaluate(e.Postfix, e.Variables, values)
}

// Solve computes the expression using the named variable values in context.
func (e *Expression) Solve(context map[rune]bool) (bool, error) {
	values := make([]bool, len(e.Variables))
	for i, variable := range e.Variables {
		value, ok := context[variable]
		if !ok {
			return false, NewUnknownVariableError(variable)
		}
		values[i] = value
	}

	result, err := e.Evaluate(values)
	if err != nil {
		return false, fmt.Errorf("failed solving '%s': %w", e.Infix, err)
	}
	return result, nil
}
