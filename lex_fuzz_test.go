//go:build go1.18
// +build go1.18

package calc

import "testing"

func FuzzTokenize(f *testing.F) {
	f.Add("x")
	f.Add("0xFF - 0b101 * (y)")
	f.Add("'it' + \"'s\"")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := TokenizeString(s)
		if err != nil {
			return
		}
		for _, tok := range toks {
			if tok.Kind == TokenNone || tok.Kind == TokenNumUnknown {
				t.Errorf("tokenizing %q produced %v", s, tok)
			}
			if tok.Text == "" && tok.Kind != TokenString {
				t.Errorf("tokenizing %q produced empty %v", s, tok)
			}
		}
	})
}
