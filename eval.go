package calc

import (
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/ahrtr/gocontainer/stack"
	"github.com/edwingeng/deque"
)

// Evaluator evaluates token sequences against a root scope. Assignments made
// by one evaluation are visible to the next. It is not safe to use an
// Evaluator concurrently.
type Evaluator struct {
	scope Scope
	nums  map[string]*big.Float
	prec  uint
}

// Option is an option used when creating an evaluator.
type Option interface {
	evalOption()
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt   map[string]Value
	precopt   uint
	scopeopt  Scope
	constsopt struct{}
)

func (varopt) evalOption()    {}
func (varsopt) evalOption()   {}
func (precopt) evalOption()   {}
func (scopeopt) evalOption()  {}
func (constsopt) evalOption() {}

// SetVar sets the value of a variable in the evaluator's root scope.
func SetVar(name string, val Value) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the evaluator's root
// scope.
func SetVars(vars map[string]Value) Option {
	return varsopt(vars)
}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) Option {
	return precopt(prec)
}

// WithScope makes the evaluator use an existing scope instead of creating a
// new root.
func WithScope(s Scope) Option {
	return scopeopt(s)
}

// Constants defines pi and e in the evaluator's scope, computed to the
// evaluator's precision.
func Constants() Option {
	return constsopt{}
}

// NewEvaluator creates an evaluator. If no precision is given, the default
// is 64.
func NewEvaluator(opts ...Option) *Evaluator {
	e := Evaluator{nums: make(map[string]*big.Float), prec: 64}
	// Loop backward so we apply the last precision and scope.
	var scoped, prec bool
	for i := len(opts) - 1; i >= 0; i-- {
		switch opt := opts[i].(type) {
		case precopt:
			if !prec {
				e.prec = uint(opt)
				prec = true
			}
		case scopeopt:
			if !scoped {
				e.scope = Scope(opt)
				scoped = true
			}
		}
	}
	if !scoped {
		e.scope = NewScope()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			e.scope.Assign(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				e.scope.Assign(k, v)
			}
		case constsopt:
			for k, v := range constants(e.prec) {
				e.scope.Assign(k, v)
			}
		case precopt, scopeopt:
			// Already done. Do nothing.
		default:
			panic("calc: unknown option type")
		}
	}
	return &e
}

// Scope returns the evaluator's root scope.
func (e *Evaluator) Scope() Scope {
	return e.scope
}

// Prec returns the precision to which values are computed.
func (e *Evaluator) Prec() uint {
	return e.prec
}

// Eval evaluates a token sequence in the evaluator's root scope.
func (e *Evaluator) Eval(tokens []Token) (Value, error) {
	return e.EvalIn(tokens, e.scope)
}

// EvalIn evaluates a token sequence in the given scope. If the sequence is
// empty, the error is ErrNoResult.
func (e *Evaluator) EvalIn(tokens []Token, scope Scope) (Value, error) {
	post, err := Postfix(tokens)
	if err != nil {
		return nil, err
	}
	return e.reduce(post, scope)
}

// EvalString is a shortcut to tokenize and evaluate a string in the
// evaluator's root scope.
func (e *Evaluator) EvalString(src string) (Value, error) {
	toks, err := TokenizeString(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(toks)
}

// Evaluate evaluates a token sequence against a scope with a new evaluator.
func Evaluate(tokens []Token, scope Scope, opts ...Option) (Value, error) {
	opts = append(opts[:len(opts):len(opts)], WithScope(scope))
	return NewEvaluator(opts...).Eval(tokens)
}

// Eval is a shortcut to tokenize and evaluate an expression in a new scope.
func Eval(src io.RuneScanner, opts ...Option) (Value, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(opts...).Eval(toks)
}

// EvalString is a shortcut to tokenize and evaluate a string expression in a
// new scope.
func EvalString(src string, opts ...Option) (Value, error) {
	return Eval(strings.NewReader(src), opts...)
}

// Postfix reorders a token sequence from infix to postfix order using the
// shunting-yard algorithm. Unary + and - are renamed to u+ and u-. Brackets
// are removed.
func Postfix(tokens []Token) ([]Token, error) {
	holding := stack.New()
	output := deque.NewDeque()
	prev := Token{}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum16, TokenNum10, TokenNum2, TokenString, TokenBool, TokenKeyword, TokenSymbol:
			output.PushBack(tok)
		case TokenOp:
			if u := unaryKey(tok.Text); u != "" && !endsOperand(prev.Kind) {
				tok.Text = u
			}
			op, ok := operators[tok.Text]
			if !ok {
				return nil, &SyntaxError{Col: tok.Pos, Msg: "unknown operator " + strconv.Quote(tok.Text)}
			}
			for !holding.IsEmpty() {
				top := holding.Peek().(Token)
				if top.Kind == TokenOpen || !popsBefore(operators[top.Text], op) {
					break
				}
				output.PushBack(holding.Pop())
			}
			holding.Push(tok)
		case TokenOpen:
			holding.Push(tok)
		case TokenClose:
			for {
				if holding.IsEmpty() {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				top := holding.Pop().(Token)
				if top.Kind == TokenOpen {
					break
				}
				output.PushBack(top)
			}
		case TokenComma, TokenSemicolon:
			return nil, &SeparatorError{Col: tok.Pos, Sep: tok.Text}
		default:
			return nil, &SyntaxError{Col: tok.Pos, Msg: "invalid token " + tok.String()}
		}
		prev = tok
	}
	for !holding.IsEmpty() {
		top := holding.Pop().(Token)
		if top.Kind == TokenOpen {
			return nil, &SyntaxError{Col: top.Pos, Msg: "open bracket " + top.Text + " with no close bracket"}
		}
		output.PushBack(top)
	}
	r := make([]Token, 0, output.Len())
	for !output.Empty() {
		r = append(r, output.PopFront().(Token))
	}
	return r, nil
}

// endsOperand reports whether a token of the given kind can end an operand,
// so that a following + or - is binary.
func endsOperand(k TokenKind) bool {
	switch k {
	case TokenNum16, TokenNum10, TokenNum2, TokenString, TokenBool, TokenSymbol, TokenClose:
		return true
	default:
		return false
	}
}

// num gets a possibly cached number from a literal token.
func (e *Evaluator) num(tok Token) (*big.Float, error) {
	key := tok.Source()
	if r := e.nums[key]; r != nil {
		return r, nil
	}
	r := new(big.Float).SetPrec(e.prec)
	switch tok.Kind {
	case TokenNum10:
		if _, _, err := r.Parse(tok.Text, 10); err != nil {
			return nil, &SyntaxError{Col: tok.Pos, Msg: "invalid number " + strconv.Quote(tok.Text)}
		}
	case TokenNum16, TokenNum2:
		base := 16
		if tok.Kind == TokenNum2 {
			base = 2
		}
		i, ok := new(big.Int).SetString(tok.Text, base)
		if !ok {
			return nil, &SyntaxError{Col: tok.Pos, Msg: "invalid number " + strconv.Quote(key)}
		}
		r.SetInt(i)
	default:
		panic("calc: num on non-numeric token " + tok.String())
	}
	e.nums[key] = r
	return r, nil
}
