package boolexpr

import (
	"unicode"

	"github.com/samber/lo"
)

// ExtractVariables returns the distinct variables of the expression in the
// order they first appear. The order decides both the column order of a truth
// table and which bit of the row index each variable takes its value from.
func ExtractVariables(infix string) []rune {
	letters := lo.Filter([]rune(infix), func(r rune, _ int) bool {
		return unicode.IsLetter(r)
	})
	return lo.Uniq(letters)
}
