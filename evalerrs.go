package calc

import (
	"errors"
	"strconv"
)

// ErrNoResult is returned when evaluating an empty token sequence.
var ErrNoResult = errors.New("no result")

// ArgumentError is an error indicating an operator without enough operands.
type ArgumentError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's spelling.
	Operator string
	// Have and Want are the number of operands available and required.
	Have, Want int
}

func (err *ArgumentError) Error() string {
	return errpos(err.Col, "not enough arguments for operator "+strconv.Quote(err.Operator)+
		" (have "+strconv.Itoa(err.Have)+", want "+strconv.Itoa(err.Want)+")")
}

func (err *ArgumentError) Pos() int {
	return err.Col
}

// TypeError is an error indicating an operation applied to operands of the
// wrong kinds.
type TypeError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's spelling.
	Operator string
	// Msg describes the mismatch.
	Msg string
}

func (err *TypeError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *TypeError) Pos() int {
	return err.Col
}

// NameError is an error from a lookup for a variable that is missing from
// every scope in the chain, or which is bound to a nil Value.
type NameError struct {
	// Col is the position of the symbol.
	Col int
	// Name is the name that was missing.
	Name string
	// Unset is true if the variable exists but holds no value.
	Unset bool
}

func (err *NameError) Error() string {
	if err.Unset {
		return errpos(err.Col, "variable "+strconv.Quote(err.Name)+" has no value")
	}
	return errpos(err.Col, "unexpected symbol: undefined variable "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// BracketError is an error indicating a close bracket with no matching open
// bracket.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Right is the close bracket.
	Right string
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma or semicolon, which have no
// meaning in expressions.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// KeywordError is an error indicating a keyword whose semantics are not
// implemented.
type KeywordError struct {
	// Col is the position of the keyword.
	Col int
	// Keyword is the keyword.
	Keyword string
}

func (err *KeywordError) Error() string {
	return errpos(err.Col, "keyword "+strconv.Quote(err.Keyword)+" is not implemented")
}

func (err *KeywordError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating a token sequence which does not reduce
// to a single value.
type SyntaxError struct {
	// Col is the position of the token where the problem was found.
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// EvalError is an InputError detected during evaluation rather than lexing.
type EvalError interface {
	InputError
	evalError()
}

func (*ArgumentError) evalError()  {}
func (*TypeError) evalError()      {}
func (*NameError) evalError()      {}
func (*BracketError) evalError()   {}
func (*SeparatorError) evalError() {}
func (*KeywordError) evalError()   {}
func (*SyntaxError) evalError()    {}

var (
	_ EvalError = (*ArgumentError)(nil)
	_ EvalError = (*TypeError)(nil)
	_ EvalError = (*NameError)(nil)
	_ EvalError = (*BracketError)(nil)
	_ EvalError = (*SeparatorError)(nil)
	_ EvalError = (*KeywordError)(nil)
	_ EvalError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
