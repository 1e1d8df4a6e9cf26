package boolexpr

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestToPostfix(t *testing.T) {
	testCases := map[string]string{
		"A":     "A",
		"A&B":   "AB&",
		"A|B":   "AB|",
		"!A":    "A!",
		"A & B": "AB&",

		// precedence
		"A&B|C": "AB&C|",
		"A|B&C": "ABC&|",
		"!A&B":  "A!B&",
		"A&!B":  "AB!&",
		"A~B&C": "ABC&~",
		"A%B|C": "ABC|%",

		// equal precedence pops left to right
		"A|B^C": "AB|C^",
		"A^B|C": "AB^C|",
		"A~B%C": "AB~C%",
		"A&B&C": "AB&C&",

		// parentheses
		"(A|B)&C":     "AB|C&",
		"A&(B|C)":     "ABC|&",
		"!(A&B)":      "AB&!",
		"((A))":       "A",
		"(A|B)&(C|D)": "AB|CD|&",

		// constants are operands
		"A&1":  "A1&",
		"0|!1": "01!|",

		// repeated NOT is popped like any other operator of equal precedence
		"!!A": "!A!",
	}

	for infix, expected := range testCases {
		t.Run(infix, func(t *testing.T) {
			assert.Equal(t, expected, ToPostfix(infix))
		})
	}
}

func TestToPostfix_MalformedInputIsBestEffort(t *testing.T) {
	testCases := map[string]string{
		"":       "",
		"A$B":    "AB",
		"A&B)":   "AB&",
		")A":     "A",
		"(A&B":   "AB&(",
		"A&&B":   "A&B&",
		"A + B?": "AB",
	}

	for infix, expected := range testCases {
		t.Run(infix, func(t *testing.T) {
			assert.Equal(t, expected, ToPostfix(infix))
		})
	}
}

func TestToPrefix(t *testing.T) {
	testCases := map[string]string{
		"A":       "A",
		"A&B":     "&AB",
		"!A":      "!A",
		"A&B|C":   "|&ABC",
		"!A&B":    "&!AB",
		"(A|B)&C": "&|ABC",
		"A&(B|C)": "&A|BC",
		"!(A&B)":  "!&AB",

		// the reversal makes equal-precedence chains group to the right
		"A|B|C": "|A|BC",
	}

	for infix, expected := range testCases {
		t.Run(infix, func(t *testing.T) {
			assert.Equal(t, expected, ToPrefix(infix))
		})
	}
}

func TestPrefixPostfixDuality(t *testing.T) {
	expressions := []string{
		"A&B|C",
		"(A|B)&C",
		"!A&(B~C)",
		"A%(B^!C)|D",
		"((A&B)|(C&D))~E",
	}

	for _, infix := range expressions {
		t.Run(infix, func(t *testing.T) {
			reversed := reverseAndSwap(infix)

			// reversing the prefix form gives the postfix form of the mirrored expression
			assert.Equal(t, ToPostfix(reversed), string(lo.Reverse([]rune(ToPrefix(infix)))))

			// mirroring is its own inverse
			assert.Equal(t, infix, reverseAndSwap(reversed))
			assert.Equal(t, ToPrefix(infix), ToPrefix(reverseAndSwap(reversed)))
		})
	}
}

func TestExtractVariables(t *testing.T) {
	testCases := map[string][]rune{
		"A":           {'A'},
		"A&B":         {'A', 'B'},
		"B&A":         {'B', 'A'},
		"A&B|A":       {'A', 'B'},
		"(c|B)&!c":    {'c', 'B'},
		"x^y~x%z":     {'x', 'y', 'z'},
		"Ä&ß":         {'Ä', 'ß'},
		"1&0":         {},
		"":            {},
		"A & 1 | (B)": {'A', 'B'},
	}

	for infix, expected := range testCases {
		t.Run(infix, func(t *testing.T) {
			assert.Equal(t, expected, ExtractVariables(infix))
		})
	}
}

func TestOperatorTable(t *testing.T) {
	testCases := map[rune]OperatorInfo{
		'!': {Operator: NOT, Symbol: '!', Precedence: 4, Arity: 1},
		'&': {Operator: AND, Symbol: '&', Precedence: 3, Arity: 2},
		'|': {Operator: OR, Symbol: '|', Precedence: 2, Arity: 2},
		'^': {Operator: XOR, Symbol: '^', Precedence: 2, Arity: 2},
		'~': {Operator: NOR, Symbol: '~', Precedence: 1, Arity: 2},
		'%': {Operator: NAND, Symbol: '%', Precedence: 1, Arity: 2},
	}

	for symbol, expected := range testCases {
		t.Run(string(symbol), func(t *testing.T) {
			info, ok := LookupOperator(symbol)
			assert.True(t, ok)
			assert.Equal(t, expected, info)
			assert.True(t, IsOperator(symbol))
			assert.Equal(t, expected.Precedence, Precedence(symbol))
		})
	}

	for _, symbol := range []rune{'(', ')', 'A', '1', '+'} {
		assert.False(t, IsOperator(symbol))
		assert.Equal(t, 0, Precedence(symbol))
	}
}

func reverseAndSwap(infix string) string {
	chars := lo.Reverse([]rune(infix))
	swapParentheses(chars)
	return string(chars)
}
