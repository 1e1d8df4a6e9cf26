package boolexpr

import (
	"fmt"
	"unicode"
)

// Validate checks that the infix expression is well formed: only known
// symbols, balanced parentheses, and operands and operators in places where
// they make sense. A unary operator may not directly follow another one; it
// has to be parenthesized, as in `!(!A)`. The first problem found is returned as a
// *MalformedExpressionError.
func Validate(infix string) error {
	var openParentheses []int
	expectOperand := true
	seenToken := false
	// set right after a unary operator, cleared by any other token
	afterUnary := false

	for i, ch := range []rune(infix) {
		unary := false
		switch {
		case unicode.IsSpace(ch):
			continue

		case isOperand(ch):
			if !expectOperand {
				return NewMalformedExpressionError(infix, i, fmt.Sprintf("missing operator before '%c'", ch))
			}
			expectOperand = false

		case ch == '(':
			if !expectOperand {
				return NewMalformedExpressionError(infix, i, "missing operator before '('")
			}
			openParentheses = append(openParentheses, i)

		case ch == ')':
			if len(openParentheses) == 0 {
				return NewMalformedExpressionError(infix, i, "unmatched ')'")
			}
			if expectOperand {
				return NewMalformedExpressionError(infix, i, "missing operand before ')'")
			}
			openParentheses = openParentheses[:len(openParentheses)-1]

		case IsOperator(ch):
			info, _ := LookupOperator(ch)
			if info.Arity == 1 {
				// unary operators are prefix, so they may only appear where an operand is expected
				if !expectOperand {
					return NewMalformedExpressionError(infix, i, fmt.Sprintf("unexpected '%c'", ch))
				}
				// `!!A` converts to `!A!`, which pops the first '!' before its operand
				if afterUnary {
					return NewMalformedExpressionError(infix, i, fmt.Sprintf("repeated '%c'", ch))
				}
				unary = true
			} else {
				if expectOperand {
					return NewMalformedExpressionError(infix, i, fmt.Sprintf("missing operand before '%c'", ch))
				}
				expectOperand = true
			}

		default:
			return NewMalformedExpressionError(infix, i, fmt.Sprintf("unknown symbol '%c'", ch))
		}
		seenToken = true
		afterUnary = unary
	}

	if !seenToken {
		return NewMalformedExpressionError(infix, -1, "empty expression")
	}
	if expectOperand {
		return NewMalformedExpressionError(infix, -1, "missing operand at end of expression")
	}
	if len(openParentheses) > 0 {
		return NewMalformedExpressionError(infix, openParentheses[len(openParentheses)-1], "unmatched '('")
	}
	return nil
}
