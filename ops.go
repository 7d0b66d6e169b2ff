package calc

import (
	"math"

	"github.com/ahrtr/gocontainer/set"
)

// OpType is the semantic type of an operator.
type OpType int8

const (
	OpSub OpType = iota
	OpAdd
	OpMul
	OpDiv
	OpEquals
	OpAssign
)

var opTypeNames = [...]string{
	OpSub:    "Sub",
	OpAdd:    "Add",
	OpMul:    "Mul",
	OpDiv:    "Div",
	OpEquals: "Equals",
	OpAssign: "Assign",
}

func (t OpType) String() string {
	if t < 0 || int(t) >= len(opTypeNames) {
		return "OpType?"
	}
	return opTypeNames[t]
}

// Operator describes an operator's semantics.
type Operator struct {
	// Type is the operation the operator performs.
	Type OpType
	// Prec is the precedence. Higher is more binding.
	Prec uint8
	// Arity is the number of operands, 1 or 2.
	Arity int
	// Right indicates right-associativity.
	Right bool
}

// MaxPrec is the precedence of unary operators.
const MaxPrec = math.MaxUint8

// Unary operators are keyed by their spelling with a u prefix. The lexer can
// never produce those keys because u is not an operator rune.
var operators = map[string]Operator{
	"=":  {OpAssign, 0, 2, true},
	"==": {OpEquals, 1, 2, false},
	"-":  {OpSub, 2, 2, false},
	"+":  {OpAdd, 2, 2, false},
	"*":  {OpMul, 3, 2, false},
	"/":  {OpDiv, 3, 2, false},

	"u-": {OpSub, MaxPrec, 1, true},
	"u+": {OpAdd, MaxPrec, 1, true},
}

// LookupOperator returns the descriptor for an operator spelling, including
// the synthetic unary spellings "u+" and "u-".
func LookupOperator(text string) (Operator, bool) {
	op, ok := operators[text]
	return op, ok
}

// unaryKey gets the table key of the unary form of an operator spelling, or
// the empty string if the operator has no unary form.
func unaryKey(text string) string {
	switch text {
	case "+", "-":
		return "u" + text
	default:
		return ""
	}
}

// popsBefore reports whether top, an operator on the holding stack, must be
// moved to the output before pushing incoming.
func popsBefore(top, incoming Operator) bool {
	if incoming.Arity == 1 {
		// Prefix operators have no left operand to finish.
		return false
	}
	if incoming.Right {
		return top.Prec > incoming.Prec
	}
	return top.Prec >= incoming.Prec
}

// Keywords are recognized by the lexer but have no evaluation semantics yet.
const (
	KeywordIf    = "if"
	KeywordWhile = "while"
	KeywordFor   = "for"
)

var keywords = newKeywordSet(KeywordIf, KeywordWhile, KeywordFor)

func newKeywordSet(words ...string) set.Interface {
	s := set.New()
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// IsKeyword reports whether a symbol is reserved as a keyword.
func IsKeyword(text string) bool {
	return keywords.Contains(text)
}
