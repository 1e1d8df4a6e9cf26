package boolexpr

import (
	"unicode"

	"github.com/samber/lo"
)

// ToPostfix converts an infix expression to postfix notation using the
// shunting-yard algorithm.
//
// Operators of equal precedence are popped before the new one is pushed, so
// `A|B^C` becomes `AB|C^`. Characters that are neither operands, operators nor
// parentheses are skipped, and unbalanced parentheses are not reported. Use
// Validate to detect those.
func ToPostfix(infix string) string {
	var output []rune
	var stack []rune

	for _, ch := range infix {
		switch {
		case isOperand(ch):
			output = append(output, ch)

		case ch == '(':
			stack = append(stack, ch)

		case ch == ')':
			for len(stack) > 0 && stack[len(stack)-1] != '(' {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			// drop the '(' itself, if there was one
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case IsOperator(ch):
			for len(stack) > 0 && stack[len(stack)-1] != '(' && Precedence(ch) <= Precedence(stack[len(stack)-1]) {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, ch)
		}
	}

	for len(stack) > 0 {
		output = append(output, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	return string(output)
}

// ToPrefix converts an infix expression to prefix notation. The infix string
// is reversed with its parentheses swapped, converted to postfix, and the
// result reversed again.
func ToPrefix(infix string) string {
	chars := lo.Reverse([]rune(infix))
	swapParentheses(chars)

	postfix := []rune(ToPostfix(string(chars)))
	return string(lo.Reverse(postfix))
}

func swapParentheses(chars []rune) {
	for i, ch := range chars {
		switch ch {
		case '(':
			chars[i] = ')'
		case ')':
			chars[i] = '('
		}
	}
}

func isOperand(r rune) bool {
	return unicode.IsLetter(r) || IsConstant(r)
}
