package calc

import (
	"math/big"
	"strconv"
)

// operand is an entry on the reduction stack.
type operand struct {
	v   Value
	pos int
}

// keywordHandlers are the evaluation hooks for keywords. Each receives the
// reduction stack and returns it, possibly modified.
var keywordHandlers = map[string]func(e *Evaluator, tok Token, solving []operand) ([]operand, error){
	KeywordIf:    (*Evaluator).evalIf,
	KeywordWhile: (*Evaluator).evalWhile,
	KeywordFor:   (*Evaluator).evalFor,
}

// reduce evaluates a postfix token sequence.
func (e *Evaluator) reduce(post []Token, scope Scope) (Value, error) {
	var solving []operand
	for _, tok := range post {
		switch tok.Kind {
		case TokenNum16, TokenNum10, TokenNum2:
			x, err := e.num(tok)
			if err != nil {
				return nil, err
			}
			solving = append(solving, operand{Number(x), tok.Pos})
		case TokenBool:
			solving = append(solving, operand{Boolean(tok.Text == "true"), tok.Pos})
		case TokenString:
			solving = append(solving, operand{String(tok.Text), tok.Pos})
		case TokenSymbol:
			solving = append(solving, operand{Symbol(tok.Text), tok.Pos})
		case TokenKeyword:
			h := keywordHandlers[tok.Text]
			if h == nil {
				return nil, &KeywordError{Col: tok.Pos, Keyword: tok.Text}
			}
			var err error
			solving, err = h(e, tok, solving)
			if err != nil {
				return nil, err
			}
		case TokenOp:
			op, ok := operators[tok.Text]
			if !ok {
				return nil, &SyntaxError{Col: tok.Pos, Msg: "unknown operator " + strconv.Quote(tok.Text)}
			}
			if len(solving) < op.Arity {
				return nil, &ArgumentError{Col: tok.Pos, Operator: opname(tok.Text), Have: len(solving), Want: op.Arity}
			}
			k := len(solving) - op.Arity
			// args[0] is the left operand.
			args := solving[k:]
			r, err := e.apply(tok, op, args, scope)
			if err != nil {
				return nil, err
			}
			solving = append(solving[:k], operand{r, args[0].pos})
		default:
			return nil, &SyntaxError{Col: tok.Pos, Msg: "invalid token " + tok.String()}
		}
	}
	switch len(solving) {
	case 0:
		return nil, ErrNoResult
	case 1:
		if sym, ok := solving[0].v.(Symbol); ok {
			if _, ok := scope.Get(string(sym)); ok {
				return resolve(solving[0], scope)
			}
		}
		return solving[0].v, nil
	default:
		return nil, &SyntaxError{Col: solving[1].pos, Msg: "missing operator before " + strconv.Quote(solving[1].v.String())}
	}
}

// opname gets the spelling of an operator as the user wrote it.
func opname(text string) string {
	if len(text) == 2 && text[0] == 'u' {
		return text[1:]
	}
	return text
}

// resolve replaces a symbol with the value of its variable.
func resolve(arg operand, scope Scope) (Value, error) {
	sym, ok := arg.v.(Symbol)
	if !ok {
		return arg.v, nil
	}
	v, ok := scope.Get(string(sym))
	if !ok {
		return nil, &NameError{Col: arg.pos, Name: string(sym)}
	}
	if v == nil {
		return nil, &NameError{Col: arg.pos, Name: string(sym), Unset: true}
	}
	return v, nil
}

// apply applies an operator to its operands, left to right.
func (e *Evaluator) apply(tok Token, op Operator, args []operand, scope Scope) (Value, error) {
	name := opname(tok.Text)
	if op.Arity == 1 {
		x, err := resolve(args[0], scope)
		if err != nil {
			return nil, err
		}
		n, ok := x.(Numeric)
		if !ok {
			return nil, &TypeError{Col: tok.Pos, Operator: name, Msg: "can't apply unary operator " + name + " to " + x.Kind().String()}
		}
		return e.unary(op.Type, n), nil
	}

	if op.Type == OpAssign {
		sym, ok := args[0].v.(Symbol)
		if !ok {
			return nil, &TypeError{Col: tok.Pos, Operator: name, Msg: "can't assign to " + args[0].v.Kind().String() + " " + strconv.Quote(args[0].v.String())}
		}
		v, err := resolve(args[1], scope)
		if err != nil {
			return nil, err
		}
		scope.Assign(string(sym), v)
		return v, nil
	}

	l, err := resolve(args[0], scope)
	if err != nil {
		return nil, err
	}
	r, err := resolve(args[1], scope)
	if err != nil {
		return nil, err
	}
	if op.Type == OpEquals {
		return equals(tok, l, r)
	}

	ls, lstr := l.(String)
	rs, rstr := r.(String)
	if lstr || rstr {
		if op.Type != OpAdd {
			return nil, &TypeError{Col: tok.Pos, Operator: name, Msg: "can only concatenate with another string; " + name + " is not defined on strings"}
		}
		if !lstr || !rstr {
			return nil, &TypeError{Col: tok.Pos, Operator: name, Msg: "can only concatenate a string with another string, not " + other(KindString, l, r).String()}
		}
		return ls + rs, nil
	}

	ln, lok := l.(Numeric)
	rn, rok := r.(Numeric)
	if !lok || !rok {
		return nil, &TypeError{Col: tok.Pos, Operator: name, Msg: "must have numeric values to perform arithmetic, not " + other(KindNumeric, l, r).String()}
	}
	return e.arith(op.Type, ln, rn), nil
}

// other returns the kind of the first of l and r which is not of kind k.
func other(k Kind, l, r Value) Kind {
	if l.Kind() != k {
		return l.Kind()
	}
	return r.Kind()
}

// equals compares two values of the same kind.
func equals(tok Token, l, r Value) (Value, error) {
	if l.Kind() != r.Kind() {
		return nil, &TypeError{Col: tok.Pos, Operator: "==", Msg: "can't compare values of different types: " + l.Kind().String() + " and " + r.Kind().String()}
	}
	switch l := l.(type) {
	case Numeric:
		return Boolean(l.Equal(r.(Numeric))), nil
	case Boolean:
		return Boolean(l == r.(Boolean)), nil
	case String:
		return Boolean(l == r.(String)), nil
	default:
		return nil, &TypeError{Col: tok.Pos, Operator: "==", Msg: "can't compare 2 values of kind " + l.Kind().String()}
	}
}

func (e *Evaluator) unary(t OpType, x Numeric) Numeric {
	if x.NaN {
		return x
	}
	z := new(big.Float).SetPrec(e.prec)
	switch t {
	case OpSub:
		z.Neg(x.float())
	case OpAdd:
		z.Set(x.float())
	default:
		panic("calc: invalid unary operator " + t.String())
	}
	return Numeric{X: z}
}

// arith performs binary arithmetic. Operations which have no real result,
// like 0/0, produce NaN rather than an error.
func (e *Evaluator) arith(t OpType, l, r Numeric) (v Numeric) {
	if l.NaN || r.NaN {
		return NaN()
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		v = NaN()
	}()
	z := new(big.Float).SetPrec(e.prec)
	switch t {
	case OpSub:
		z.Sub(l.float(), r.float())
	case OpAdd:
		z.Add(l.float(), r.float())
	case OpMul:
		z.Mul(l.float(), r.float())
	case OpDiv:
		z.Quo(l.float(), r.float())
	default:
		panic("calc: invalid arithmetic operator " + t.String())
	}
	return Numeric{X: z}
}

func (e *Evaluator) evalIf(tok Token, solving []operand) ([]operand, error) {
	return solving, &KeywordError{Col: tok.Pos, Keyword: tok.Text}
}

func (e *Evaluator) evalWhile(tok Token, solving []operand) ([]operand, error) {
	return solving, &KeywordError{Col: tok.Pos, Keyword: tok.Text}
}

func (e *Evaluator) evalFor(tok Token, solving []operand) ([]operand, error) {
	return solving, &KeywordError{Col: tok.Pos, Keyword: tok.Text}
}
