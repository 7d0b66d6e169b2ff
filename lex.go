package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// lexState is the continuation state of the lexer.
type lexState int8

const (
	// stateStart dispatches on the first rune of a new token.
	stateStart lexState = iota
	stateNumUnknown
	stateNum16
	stateNum10
	stateNum2
	stateString
	stateOp
	stateSymbol
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
	// kind and pos describe the token being scanned.
	kind TokenKind
	pos  int
	// quote is the rune that opened the string being scanned.
	quote rune
	// parens and quotes are the balance counters. Both must be zero at EOF.
	parens, quotes int
	toks           []Token
}

// Tokenize scans the entire input into tokens. Errors other than io.EOF from
// src are returned as-is; invalid input produces a *LexError.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	return l.run()
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

func (l *lexer) run() ([]Token, error) {
	st := stateStart
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch st {
		case stateStart:
			st, err = l.start(r)
		case stateNumUnknown:
			st, err = l.prefix(r)
		case stateNum16:
			st, err = l.digits(r, isHexDigit, stateNum16)
		case stateNum10:
			st, err = l.decimal(r)
		case stateNum2:
			st, err = l.digits(r, isBinDigit, stateNum2)
		case stateString:
			st = l.str(r)
		case stateOp:
			st, err = l.op(r)
		case stateSymbol:
			st = l.symbol(r)
		default:
			panic("calc: invalid lexer state " + strconv.Itoa(int(st)))
		}
		if err != nil {
			return nil, err
		}
	}
	if l.parens != 0 {
		return nil, l.error("unbalanced parentheses")
	}
	if l.quotes != 0 {
		return nil, l.error("unbalanced quotes")
	}
	if err := l.flush(st); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// begin starts a new token of the given kind at the current rune.
func (l *lexer) begin(kind TokenKind) {
	l.kind = kind
	l.pos = l.col
	l.buf.Reset()
}

// emit appends the token being scanned to the output.
func (l *lexer) emit() lexState {
	l.toks = append(l.toks, Token{Kind: l.kind, Text: l.buf.String(), Pos: l.pos})
	l.kind = TokenNone
	l.buf.Reset()
	return stateStart
}

// single emits a one-rune token.
func (l *lexer) single(kind TokenKind, r rune) lexState {
	l.begin(kind)
	l.buf.WriteRune(r)
	return l.emit()
}

// start dispatches on the first rune of a token.
func (l *lexer) start(r rune) (lexState, error) {
	switch {
	case isSpace(r):
		return stateStart, nil
	case isDigit(r):
		if r == '0' {
			l.begin(TokenNumUnknown)
			return stateNumUnknown, nil
		}
		l.begin(TokenNum10)
		l.buf.WriteRune(r)
		return stateNum10, nil
	case isOperator(r):
		l.begin(TokenOp)
		l.buf.WriteRune(r)
		return stateOp, nil
	case isQuote(r):
		l.begin(TokenString)
		l.quote = r
		l.quotes++
		return stateString, nil
	case isSymbol(r):
		l.begin(TokenSymbol)
		l.buf.WriteRune(r)
		return stateSymbol, nil
	case isOpen(r):
		l.parens++
		return l.single(TokenOpen, r), nil
	case isClose(r):
		l.parens--
		return l.single(TokenClose, r), nil
	case r == ',':
		return l.single(TokenComma, r), nil
	case r == ';':
		return l.single(TokenSemicolon, r), nil
	default:
		l.begin(TokenNone)
		l.buf.WriteRune(r)
		return stateStart, l.error("unexpected character")
	}
}

// prefix decides the base of a numeric literal which began with 0.
func (l *lexer) prefix(r rune) (lexState, error) {
	switch {
	case r == 'x' || r == 'X':
		l.kind = TokenNum16
		return stateNum16, nil
	case r == 'b' || r == 'B':
		l.kind = TokenNum2
		return stateNum2, nil
	case isDigit(r):
		// 0.5, 007
		l.kind = TokenNum10
		l.buf.WriteByte('0')
		return l.decimal(r)
	case isSymbol(r):
		l.buf.WriteRune(r)
		return stateStart, l.error("unknown prefix")
	default:
		// Plain zero.
		l.kind = TokenNum10
		l.buf.WriteByte('0')
		return l.decimal(r)
	}
}

// decimal continues a base-10 literal.
func (l *lexer) decimal(r rune) (lexState, error) {
	if isDigit(r) {
		if r == '.' && strings.ContainsRune(l.buf.String(), '.') {
			l.buf.WriteRune(r)
			return stateStart, l.error("invalid numeric literal")
		}
		l.buf.WriteRune(r)
		return stateNum10, nil
	}
	return l.endnum(r)
}

// digits continues a hex or binary literal.
func (l *lexer) digits(r rune, ok func(rune) bool, st lexState) (lexState, error) {
	if ok(r) {
		l.buf.WriteRune(r)
		return st, nil
	}
	return l.endnum(r)
}

// endnum finishes a numeric literal at a rune that cannot continue it.
func (l *lexer) endnum(r rune) (lexState, error) {
	if isSymbol(r) {
		// 12abc
		l.buf.WriteRune(r)
		return stateStart, l.error("invalid numeric literal or symbol")
	}
	if err := l.checknum(); err != nil {
		return stateStart, err
	}
	l.unreadRune()
	return l.emit(), nil
}

// checknum validates the text of a complete numeric literal.
func (l *lexer) checknum() error {
	s := l.buf.String()
	switch l.kind {
	case TokenNum10:
		if strings.Trim(s, ".") == "" || strings.HasSuffix(s, ".") {
			return l.error("invalid numeric literal")
		}
	case TokenNum16, TokenNum2:
		if s == "" {
			return l.error("invalid numeric literal")
		}
	}
	return nil
}

// str continues a string literal.
func (l *lexer) str(r rune) lexState {
	if r == l.quote {
		l.quotes--
		return l.emit()
	}
	l.buf.WriteRune(r)
	return stateString
}

// op continues an operator with the longest spelling in the operator table.
func (l *lexer) op(r rune) (lexState, error) {
	s := l.buf.String()
	_, have := operators[s]
	if isOperator(r) {
		if _, ok := operators[s+string(r)]; ok || !have {
			l.buf.WriteRune(r)
			return stateOp, nil
		}
		l.unreadRune()
		return l.emit(), nil
	}
	if !have {
		return stateStart, l.error("invalid operator")
	}
	l.unreadRune()
	return l.emit(), nil
}

// symbol continues a symbol, reclassifying it once complete.
func (l *lexer) symbol(r rune) lexState {
	if isSymbol(r) || isDigit(r) {
		l.buf.WriteRune(r)
		return stateSymbol
	}
	l.classify()
	l.unreadRune()
	return l.emit()
}

// classify retypes a complete symbol as a keyword or boolean literal.
func (l *lexer) classify() {
	switch s := l.buf.String(); {
	case IsKeyword(s):
		l.kind = TokenKeyword
	case s == "true", s == "false":
		l.kind = TokenBool
	}
}

// flush finishes the token being scanned at EOF.
func (l *lexer) flush(st lexState) error {
	switch st {
	case stateStart:
		return nil
	case stateNumUnknown:
		// The input ended with 0.
		l.kind = TokenNum10
		l.buf.WriteByte('0')
	case stateNum10, stateNum16, stateNum2:
		if err := l.checknum(); err != nil {
			return err
		}
	case stateOp:
		if _, ok := operators[l.buf.String()]; !ok {
			return l.error("invalid operator")
		}
	case stateSymbol:
		l.classify()
	case stateString:
		// Unreachable because the quote counter is checked first.
		return l.error("unbalanced quotes")
	}
	l.emit()
	return nil
}

func (l *lexer) error(reason string) error {
	return &LexError{
		Text:   l.buf.String(),
		Reason: reason,
		Col:    l.col,
	}
}

// LexError indicates invalid input to the lexer.
type LexError struct {
	// Text is the token the lexer was scanning when the error was detected,
	// usually including the offending rune.
	Text string
	// Reason describes the problem, e.g. "unknown prefix".
	Reason string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	msg := errpos(err.Col, err.Reason)
	if err.Text == "" {
		return msg
	}
	return msg + ": " + strconv.Quote(err.Text)
}

// Pos returns the column at which the error was detected.
func (err *LexError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
