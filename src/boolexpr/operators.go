package boolexpr

type Operator int

const (
	NOT Operator = iota + 1
	AND
	OR
	XOR
	NOR
	NAND
)

// OperatorInfo describes how an operator symbol is parsed and applied.
type OperatorInfo struct {
	Operator   Operator
	Symbol     rune
	Precedence int // higher binds tighter
	Arity      int
}

var operators = map[rune]OperatorInfo{
	'!': {Operator: NOT, Symbol: '!', Precedence: 4, Arity: 1},
	'&': {Operator: AND, Symbol: '&', Precedence: 3, Arity: 2},
	'|': {Operator: OR, Symbol: '|', Precedence: 2, Arity: 2},
	'^': {Operator: XOR, Symbol: '^', Precedence: 2, Arity: 2},
	'~': {Operator: NOR, Symbol: '~', Precedence: 1, Arity: 2},
	'%': {Operator: NAND, Symbol: '%', Precedence: 1, Arity: 2},
}

// constants maps the digits accepted as literal operands to their value, so
// that identities like `A & 1` can be typed in as they are printed.
var constants = map[rune]bool{
	'1': true,
	'0': false,
}

// LookupOperator returns the table entry for the given symbol.
func LookupOperator(r rune) (OperatorInfo, bool) {
	info, ok := operators[r]
	return info, ok
}

func IsOperator(r rune) bool {
	_, ok := operators[r]
	return ok
}

// Precedence returns the precedence rank of the symbol, or 0 if it is not an
// operator. Parentheses have rank 0.
func Precedence(r rune) int {
	return operators[r].Precedence
}

func IsConstant(r rune) bool {
	_, ok := constants[r]
	return ok
}

func (o Operator) String() string {
	switch o {
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case NOR:
		return "NOR"
	case NAND:
		return "NAND"
	default:
		return "UNKNOWN"
	}
}

// Apply computes the operator over its operands. a is ignored by NOT.
func (o Operator) Apply(a, b bool) bool {
	switch o {
	case NOT:
		return !b
	case AND:
		return a && b
	case OR:
		return a || b
	case XOR:
		return a != b
	case NOR:
		return !(a || b)
	case NAND:
		return !(a && b)
	default:
		return false
	}
}
