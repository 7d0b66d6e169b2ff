package calc

import (
	"math"
	"math/big"
	"strconv"
)

// Value is the result of evaluating an expression. The only implementations
// are Numeric, Boolean, String, and Symbol.
type Value interface {
	// Kind returns the value's kind.
	Kind() Kind
	// String formats the value's underlying representation: numbers in
	// their natural textual form, booleans as true or false, and strings
	// and symbols as their raw text.
	String() string

	value()
}

// Kind identifies a Value's variant.
type Kind int8

const (
	KindNumeric Kind = iota
	KindBoolean
	KindString
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Numeric is a real number. X must not be modified once the value is
// created. If NaN is true, X is nil; big.Float has no NaN, so NaN results of
// arithmetic are represented separately. The zero Numeric is 0.
type Numeric struct {
	X   *big.Float
	NaN bool
}

// Number creates a Numeric holding a copy of x. A nil x is 0.
func Number(x *big.Float) Numeric {
	if x == nil {
		return Numeric{}
	}
	return Numeric{X: new(big.Float).Copy(x)}
}

// Float creates a Numeric from a float64. Passing NaN produces a NaN Numeric.
func Float(x float64) Numeric {
	if math.IsNaN(x) {
		return NaN()
	}
	return Numeric{X: big.NewFloat(x)}
}

// NaN returns a Numeric which is not a number.
func NaN() Numeric {
	return Numeric{NaN: true}
}

// Float64 returns the nearest float64 to the value.
func (v Numeric) Float64() float64 {
	if v.NaN {
		return math.NaN()
	}
	f, _ := v.float().Float64()
	return f
}

// float returns X, or a zero if X is nil.
func (v Numeric) float() *big.Float {
	if v.X == nil {
		return new(big.Float)
	}
	return v.X
}

func (v Numeric) Kind() Kind { return KindNumeric }

func (v Numeric) String() string {
	if v.NaN {
		return "NaN"
	}
	return v.float().Text('g', -1)
}

// Equal reports whether two numbers are equal. NaN equals nothing.
func (v Numeric) Equal(w Numeric) bool {
	if v.NaN || w.NaN {
		return false
	}
	return v.float().Cmp(w.float()) == 0
}

// Boolean is true or false.
type Boolean bool

func (v Boolean) Kind() Kind { return KindBoolean }

func (v Boolean) String() string {
	return strconv.FormatBool(bool(v))
}

// String is a string value.
type String string

func (v String) Kind() Kind { return KindString }

func (v String) String() string { return string(v) }

// Symbol is a name which has not been resolved against a scope.
type Symbol string

func (v Symbol) Kind() Kind { return KindSymbol }

func (v Symbol) String() string { return string(v) }

func (Numeric) value() {}
func (Boolean) value() {}
func (String) value()  {}
func (Symbol) value()  {}

var (
	_ Value = Numeric{}
	_ Value = Boolean(false)
	_ Value = String("")
	_ Value = Symbol("")
)
