package calc

import (
	"errors"
	"strings"
	"testing"
)

func sametokens(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Token{{TokenNum10, "0", 1}}},
		{"9876543210", []Token{{TokenNum10, "9876543210", 1}}},
		{"1 0", []Token{{TokenNum10, "1", 1}, {TokenNum10, "0", 3}}},
		{"1.5", []Token{{TokenNum10, "1.5", 1}}},
		{".5", []Token{{TokenNum10, ".5", 1}}},
		{"0.25", []Token{{TokenNum10, "0.25", 1}}},
		{"007", []Token{{TokenNum10, "007", 1}}},
		{"0xFF", []Token{{TokenNum16, "FF", 1}}},
		{"0XaB", []Token{{TokenNum16, "aB", 1}}},
		{"0b101", []Token{{TokenNum2, "101", 1}}},
		{"0+1", []Token{{TokenNum10, "0", 1}, {TokenOp, "+", 2}, {TokenNum10, "1", 3}}},
		{"(0)", []Token{{TokenOpen, "(", 1}, {TokenNum10, "0", 2}, {TokenClose, ")", 3}}},
		// operators
		{"+", []Token{{TokenOp, "+", 1}}},
		{"3--5", []Token{{TokenNum10, "3", 1}, {TokenOp, "-", 2}, {TokenOp, "-", 3}, {TokenNum10, "5", 4}}},
		{"a==b", []Token{{TokenSymbol, "a", 1}, {TokenOp, "==", 2}, {TokenSymbol, "b", 4}}},
		{"a===b", []Token{{TokenSymbol, "a", 1}, {TokenOp, "==", 2}, {TokenOp, "=", 4}, {TokenSymbol, "b", 5}}},
		{"x = 5", []Token{{TokenSymbol, "x", 1}, {TokenOp, "=", 3}, {TokenNum10, "5", 5}}},
		{"2*-3", []Token{{TokenNum10, "2", 1}, {TokenOp, "*", 2}, {TokenOp, "-", 3}, {TokenNum10, "3", 4}}},
		// strings
		{`'ab' + "cd"`, []Token{{TokenString, "ab", 1}, {TokenOp, "+", 6}, {TokenString, "cd", 8}}},
		{`"it's"`, []Token{{TokenString, "it's", 1}}},
		{`''`, []Token{{TokenString, "", 1}}},
		{`'1 + (2'`, []Token{{TokenString, "1 + (2", 1}}},
		// symbols, keywords, and booleans
		{"foo_bar.baz9", []Token{{TokenSymbol, "foo_bar.baz9", 1}}},
		{"x1+y", []Token{{TokenSymbol, "x1", 1}, {TokenOp, "+", 3}, {TokenSymbol, "y", 4}}},
		{"if while for", []Token{{TokenKeyword, "if", 1}, {TokenKeyword, "while", 4}, {TokenKeyword, "for", 10}}},
		{"true false truth", []Token{{TokenBool, "true", 1}, {TokenBool, "false", 6}, {TokenSymbol, "truth", 12}}},
		{"π", []Token{{TokenSymbol, "π", 1}}},
		// brackets and separators
		{"[{}]", []Token{{TokenOpen, "[", 1}, {TokenOpen, "{", 2}, {TokenClose, "}", 3}, {TokenClose, "]", 4}}},
		{"a,b;c", []Token{{TokenSymbol, "a", 1}, {TokenComma, ",", 2}, {TokenSymbol, "b", 3}, {TokenSemicolon, ";", 4}, {TokenSymbol, "c", 5}}},
	}
	for _, c := range cases {
		got, err := TokenizeString(c.src)
		if err != nil {
			t.Errorf("tokenizing %q: unexpected error %v", c.src, err)
			continue
		}
		if !sametokens(got, c.tokens) {
			t.Errorf("tokenizing %q: want %v, got %v", c.src, c.tokens, got)
		}
	}
}

func TestTokenizeZeroPrefix(t *testing.T) {
	good := []struct {
		src    string
		tokens []Token
	}{
		{"0", []Token{{TokenNum10, "0", 1}}},
		{"0.5", []Token{{TokenNum10, "0.5", 1}}},
		{"007", []Token{{TokenNum10, "007", 1}}},
		{"0 + 1", []Token{{TokenNum10, "0", 1}, {TokenOp, "+", 3}, {TokenNum10, "1", 5}}},
		{"(0)", []Token{{TokenOpen, "(", 1}, {TokenNum10, "0", 2}, {TokenClose, ")", 3}}},
		{"0x1F", []Token{{TokenNum16, "1F", 1}}},
		{"0B10", []Token{{TokenNum2, "10", 1}}},
	}
	for _, c := range good {
		got, err := TokenizeString(c.src)
		if err != nil {
			t.Errorf("tokenizing %q: unexpected error %v", c.src, err)
			continue
		}
		if !sametokens(got, c.tokens) {
			t.Errorf("tokenizing %q: want %v, got %v", c.src, c.tokens, got)
		}
	}
	for _, src := range []string{"0z", "0q", "0_", "0abc", "1 + 0y"} {
		toks, err := TokenizeString(src)
		var lerr *LexError
		if !errors.As(err, &lerr) {
			t.Errorf("tokenizing %q: want LexError, got %v, %v", src, toks, err)
			continue
		}
		if lerr.Reason != "unknown prefix" {
			t.Errorf("tokenizing %q: want unknown prefix, got %v", src, lerr)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src    string
		reason string
		col    int
	}{
		{"0z", "unknown prefix", 2},
		{"12abc", "invalid numeric literal or symbol", 3},
		{"0xFG", "invalid numeric literal or symbol", 4},
		{"0b102", "invalid numeric literal or symbol", 5},
		{"1.2.3", "invalid numeric literal", 4},
		{"1.", "invalid numeric literal", 2},
		{".", "invalid numeric literal", 1},
		{"0x", "invalid numeric literal", 2},
		{"0x+1", "invalid numeric literal", 3},
		{"$", "unexpected character", 1},
		{"a $", "unexpected character", 3},
		{"(1", "unbalanced parentheses", 2},
		{"1)", "unbalanced parentheses", 2},
		{"((1)", "unbalanced parentheses", 4},
		{"'abc", "unbalanced quotes", 4},
		{`'a"`, "unbalanced quotes", 3},
	}
	for _, c := range cases {
		toks, err := TokenizeString(c.src)
		if err == nil {
			t.Errorf("tokenizing %q: expected error, got %v", c.src, toks)
			continue
		}
		var lerr *LexError
		if !errors.As(err, &lerr) {
			t.Errorf("tokenizing %q: error was %#v, not LexError", c.src, err)
			continue
		}
		if lerr.Reason != c.reason {
			t.Errorf("tokenizing %q: want reason %q, got %q", c.src, c.reason, lerr.Reason)
		}
		if lerr.Pos() != c.col {
			t.Errorf("tokenizing %q: want error at %d, got %d", c.src, c.col, lerr.Pos())
		}
		if !strings.Contains(err.Error(), c.reason) {
			t.Errorf("tokenizing %q: message %q doesn't mention %q", c.src, err.Error(), c.reason)
		}
	}
}

func TestTokenizeBalance(t *testing.T) {
	cases := []struct {
		src    string
		delims string
		reason string
	}{
		{"(1 + (2))", OpenBrackets + CloseBrackets, "unbalanced parentheses"},
		{"[a] * {b - (c)}", OpenBrackets + CloseBrackets, "unbalanced parentheses"},
		{"((()))", OpenBrackets + CloseBrackets, "unbalanced parentheses"},
		{"'x'", Quotes, "unbalanced quotes"},
		{"'ab' + 'cd'", Quotes, "unbalanced quotes"},
		{`"a" == "b"`, Quotes, "unbalanced quotes"},
	}
	for _, c := range cases {
		if _, err := TokenizeString(c.src); err != nil {
			t.Errorf("tokenizing %q: unexpected error %v", c.src, err)
		}
		// Removing any one delimiter unbalances the input.
		for i, r := range c.src {
			if !strings.ContainsRune(c.delims, r) {
				continue
			}
			src := c.src[:i] + c.src[i+1:]
			_, err := TokenizeString(src)
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Errorf("tokenizing %q: want LexError, got %v", src, err)
				continue
			}
			if lerr.Reason != c.reason {
				t.Errorf("tokenizing %q: want reason %q, got %q", src, c.reason, lerr.Reason)
			}
		}
	}
}

func TestTokenSourceRoundTrip(t *testing.T) {
	cases := []string{
		"1 + 2 * 3",
		"0xFF - 0b101",
		"3--5",
		"x = 'it' + \"'s\"",
		"(a == b) * [c / {d}]",
		"if true false, x; 0.5",
		"0 + 00 + 0.0",
	}
	for _, src := range cases {
		toks, err := TokenizeString(src)
		if err != nil {
			t.Errorf("tokenizing %q: %v", src, err)
			continue
		}
		parts := make([]string, len(toks))
		for i, tok := range toks {
			parts[i] = tok.Source()
		}
		re := strings.Join(parts, " ")
		again, err := TokenizeString(re)
		if err != nil {
			t.Errorf("retokenizing %q from %q: %v", re, src, err)
			continue
		}
		if len(again) != len(toks) {
			t.Errorf("retokenizing %q from %q: want %v, got %v", re, src, toks, again)
			continue
		}
		for i := range toks {
			if again[i].Kind != toks[i].Kind || again[i].Text != toks[i].Text {
				t.Errorf("retokenizing %q from %q: token %d: want %v, got %v", re, src, i, toks[i], again[i])
			}
		}
	}
}

type errReader struct {
	*strings.Reader
	err error
}

func (r errReader) ReadRune() (rune, int, error) {
	c, sz, err := r.Reader.ReadRune()
	if err != nil {
		return c, sz, r.err
	}
	return c, sz, nil
}

func TestTokenizeReaderError(t *testing.T) {
	want := errors.New("broken")
	_, err := Tokenize(errReader{strings.NewReader("1 + 2"), want})
	if !errors.Is(err, want) {
		t.Errorf("want %v, got %v", want, err)
	}
}

func TestTokenKindString(t *testing.T) {
	cases := map[TokenKind]string{
		TokenNone:     "None",
		TokenNum16:    "Num16",
		TokenOp:       "Op",
		TokenClose:    "Close",
		TokenKind(99): "TokenKind(99)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d: want %q, got %q", int(k), want, got)
		}
	}
	tok := Token{Kind: TokenSymbol, Text: "x", Pos: 3}
	if got := tok.String(); got != "Symbol:x@3" {
		t.Errorf("wrong token string %q", got)
	}
}
