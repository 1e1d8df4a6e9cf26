package boolexpr

import (
	"fmt"
	"slices"
	"unicode"
)

// Evaluate computes the value of a postfix expression. values[i] is the value
// of variables[i].
//
// A binary operator that finds only one value on the stack uses false as its
// first operand. NOT only ever consumes one value.
func Evaluate(postfix string, variables []rune, values []bool) (bool, error) {
	if len(variables) != len(values) {
		return false, fmt.Errorf("got %d values for %d variables", len(values), len(variables))
	}

	stack := make([]bool, 0, len(postfix))
	for i, ch := range []rune(postfix) {
		if value, ok := constants[ch]; ok {
			stack = append(stack, value)
			continue
		}

		info, isOperator := LookupOperator(ch)
		if !isOperator {
			if !unicode.IsLetter(ch) {
				return false, NewMalformedExpressionError(postfix, i, fmt.Sprintf("unexpected '%c'", ch))
			}
			index := slices.Index(variables, ch)
			if index < 0 {
				return false, NewUnknownVariableError(ch)
			}
			stack = append(stack, values[index])
			continue
		}

		if len(stack) == 0 {
			return false, NewMalformedExpressionError(postfix, i, fmt.Sprintf("no operand for %s", info.Operator))
		}
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		a := false
		if info.Arity == 2 && len(stack) > 0 {
			a = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}

		stack = append(stack, info.Operator.Apply(a, b))
	}

	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return false, NewMalformedExpressionError(postfix, -1, "nothing to evaluate")
	default:
		return false, NewMalformedExpressionError(postfix, -1, fmt.Sprintf("%d values left after evaluation, expected 1", len(stack)))
	}
}
