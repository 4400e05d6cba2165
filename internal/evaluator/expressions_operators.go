package evaluator

import (
	"math"

	"github.com/funvibe/rinha/internal/ast"
)

// EvalBinary applies op to already evaluated operands.
// Integer results outside the 32-bit range fail with OverflowError; they
// never wrap.
func EvalBinary(op ast.BinaryOp, left, right Value) (Value, error) {
	switch op {
	case ast.Eq, ast.Neq:
		return evalEquality(op, left, right)
	case ast.And, ast.Or:
		return evalLogical(op, left, right)
	}

	if l, ok := left.(*Integer); ok {
		if r, ok := right.(*Integer); ok {
			return evalIntegerInfix(op, l.Value, r.Value)
		}
	}
	if l, ok := left.(*String); ok {
		if r, ok := right.(*String); ok {
			return evalStringInfix(op, l.Value, r.Value)
		}
	}
	return nil, operandError(op, left, right)
}

func evalIntegerInfix(op ast.BinaryOp, a, b int32) (Value, error) {
	x, y := int64(a), int64(b)
	switch op {
	case ast.Add:
		return checkedInteger(op, a, b, x+y)
	case ast.Sub:
		return checkedInteger(op, a, b, x-y)
	case ast.Mul:
		return checkedInteger(op, a, b, x*y)
	case ast.Div:
		if b == 0 {
			return nil, newError(DivisionByZeroError, "division by zero: %d / 0", a)
		}
		return checkedInteger(op, a, b, x/y)
	case ast.Rem:
		if b == 0 {
			return nil, newError(DivisionByZeroError, "division by zero: %d %% 0", a)
		}
		return &Integer{Value: int32(x % y)}, nil
	case ast.Lt:
		return nativeBoolToBoolean(a < b), nil
	case ast.Gt:
		return nativeBoolToBoolean(a > b), nil
	case ast.Lte:
		return nativeBoolToBoolean(a <= b), nil
	case ast.Gte:
		return nativeBoolToBoolean(a >= b), nil
	}
	return nil, newError(TypeError, "operator %s not supported for Int", op.Symbol())
}

// checkedInteger narrows an exact 64-bit result back to 32 bits.
// Every product of two int32 values fits in int64, so r is exact.
func checkedInteger(op ast.BinaryOp, a, b int32, r int64) (Value, error) {
	if r > math.MaxInt32 || r < math.MinInt32 {
		return nil, newError(OverflowError, "integer overflow: %d %s %d", a, op.Symbol(), b)
	}
	return &Integer{Value: int32(r)}, nil
}

func evalStringInfix(op ast.BinaryOp, a, b string) (Value, error) {
	switch op {
	case ast.Add:
		return &String{Value: a + b}, nil
	case ast.Lt:
		return nativeBoolToBoolean(a < b), nil
	case ast.Gt:
		return nativeBoolToBoolean(a > b), nil
	case ast.Lte:
		return nativeBoolToBoolean(a <= b), nil
	case ast.Gte:
		return nativeBoolToBoolean(a >= b), nil
	}
	return nil, newError(TypeError, "operator %s not supported for Str", op.Symbol())
}

func evalEquality(op ast.BinaryOp, left, right Value) (Value, error) {
	if left.Type() != right.Type() {
		return nil, operandError(op, left, right)
	}
	eq := ValuesEqual(left, right)
	if op == ast.Neq {
		eq = !eq
	}
	return nativeBoolToBoolean(eq), nil
}

func evalLogical(op ast.BinaryOp, left, right Value) (Value, error) {
	l, lok := left.(*Boolean)
	r, rok := right.(*Boolean)
	if !lok || !rok {
		return nil, operandError(op, left, right)
	}
	if op == ast.And {
		return nativeBoolToBoolean(l.Value && r.Value), nil
	}
	return nativeBoolToBoolean(l.Value || r.Value), nil
}

func operandError(op ast.BinaryOp, left, right Value) error {
	return newError(TypeError, "invalid operands for %s: %s and %s", op.Symbol(), left.Type(), right.Type())
}
