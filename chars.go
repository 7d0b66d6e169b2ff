package calc

import (
	"strings"
	"unicode"
)

// Operators contains the runes which may appear in operator tokens.
const Operators = "+-*/="

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// Any open bracket may be closed by any close bracket.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// Quotes contains the runes which delimit string literals. A string is closed
// by the same rune that opened it.
const Quotes = `'"`

const (
	decdigits = ".0123456789"
	hexdigits = "0123456789ABCDEFabcdef"
	bindigits = "01"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// isDigit reports whether r may appear in a decimal literal. This includes
// the decimal point.
func isDigit(r rune) bool {
	return strings.ContainsRune(decdigits, r)
}

func isHexDigit(r rune) bool {
	return strings.ContainsRune(hexdigits, r)
}

func isBinDigit(r rune) bool {
	return strings.ContainsRune(bindigits, r)
}

func isOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

func isQuote(r rune) bool {
	return strings.ContainsRune(Quotes, r)
}

// isSymbol reports whether r may appear in a symbol: letters, digits,
// underscore, and dot.
func isSymbol(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isOpen(r rune) bool {
	return strings.ContainsRune(OpenBrackets, r)
}

func isClose(r rune) bool {
	return strings.ContainsRune(CloseBrackets, r)
}
