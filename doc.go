// Package calc implements a small expression language: a lexer producing
// tokens and an evaluator which reduces them to a value.
//
// Values are arbitrary-precision numbers, booleans, strings, and symbols.
// Expressions combine them with + - * / == and =, plus unary + and -. The
// evaluator reorders tokens with the shunting-yard algorithm, then reduces
// the postfix sequence on a stack. Symbols are resolved against a chain of
// scopes only when an operator needs their values, so "x = 5" assigns x and
// a later "x + 1" in the same scope gives 6.
//
// Strings concatenate with +. Comparison with == requires operands of the
// same kind. Division by zero follows floating-point rules: 1/0 is +Inf and
// 0/0 is NaN.
//
// The words if, while, and for are reserved, but evaluating them is an error.
//
package calc
