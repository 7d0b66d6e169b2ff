package calc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constants computes the predefined constants to the given precision.
func constants(prec uint) map[string]Value {
	pi := bigfloat.Pi(new(big.Float).SetPrec(prec))
	var one big.Float
	one.SetPrec(prec).SetInt64(1)
	e := bigfloat.Exp(new(big.Float).SetPrec(prec), &one)
	return map[string]Value{
		"pi": Numeric{X: pi},
		"e":  Numeric{X: e},
	}
}
