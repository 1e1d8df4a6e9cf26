package tui

// Equivalences are the Boolean algebra identities printed below every truth
// table. They don't depend on the expression.
var Equivalences = []string{
	"A & 1 = A",
	"A & 0 = 0",
	"A | 1 = 1",
	"A | 0 = A",
	"A ^ 1 = !A",
	"A ^ 0 = A",
	"!A & !B = !(A | B)",
	"!A | !B = !(A & B)",
}
