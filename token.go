package calc

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Text is the token's literal text. Hex and binary literals exclude their
	// 0x or 0b prefix, and string literals exclude their quotes.
	Text string
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

// String formats the token for traces.
func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Source renders the token as source text which tokenizes back to the same
// kind and text.
func (t Token) Source() string {
	switch t.Kind {
	case TokenNum16:
		return "0x" + t.Text
	case TokenNum2:
		return "0b" + t.Text
	case TokenString:
		if strings.ContainsRune(t.Text, '\'') {
			return `"` + t.Text + `"`
		}
		return "'" + t.Text + "'"
	default:
		return t.Text
	}
}

// TokenKind is the kind of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNumUnknown is a numeric literal whose base is not yet known. The
	// lexer never emits it.
	TokenNumUnknown
	// TokenNum16 is a hexadecimal integer literal.
	TokenNum16
	// TokenNum10 is a decimal literal, possibly with a fractional part.
	TokenNum10
	// TokenNum2 is a binary integer literal.
	TokenNum2
	// TokenString is a quoted string literal.
	TokenString
	// TokenBool is true or false.
	TokenBool
	// TokenKeyword is a reserved word, e.g. if.
	TokenKeyword
	// TokenSymbol is a name.
	TokenSymbol
	TokenComma
	TokenSemicolon
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open bracket, e.g. (.
	TokenOpen
	// TokenClose is a close bracket, e.g. ).
	TokenClose
)

var tokenKindNames = [...]string{
	TokenNone:       "None",
	TokenNumUnknown: "NumUnknown",
	TokenNum16:      "Num16",
	TokenNum10:      "Num10",
	TokenNum2:       "Num2",
	TokenString:     "String",
	TokenBool:       "Bool",
	TokenKeyword:    "Keyword",
	TokenSymbol:     "Symbol",
	TokenComma:      "Comma",
	TokenSemicolon:  "Semicolon",
	TokenOp:         "Op",
	TokenOpen:       "Open",
	TokenClose:      "Close",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// isNum reports whether the kind is a finished numeric literal.
func (k TokenKind) isNum() bool {
	return k == TokenNum16 || k == TokenNum10 || k == TokenNum2
}
