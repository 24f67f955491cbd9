package evaluator

import (
	"math"

	"github.com/manyfold-lang/manyfold/internal/config"
)

// Integer arithmetic with explicit overflow handling. Detection happens
// before the operation so the policy decides the result, not the hardware.

func addInt(a, b int64, policy config.FloatPolicy) (Object, *Error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return intOverflow(a+b, b > 0, policy, "%d + %d overflows", a, b)
	}
	return &Integer{Value: a + b}, nil
}

func subInt(a, b int64, policy config.FloatPolicy) (Object, *Error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return intOverflow(a-b, b < 0, policy, "%d - %d overflows", a, b)
	}
	return &Integer{Value: a - b}, nil
}

func mulInt(a, b int64, policy config.FloatPolicy) (Object, *Error) {
	if a != 0 && b != 0 {
		res := a * b
		if res/b != a {
			positive := (a > 0) == (b > 0)
			return intOverflow(res, positive, policy, "%d * %d overflows", a, b)
		}
		return &Integer{Value: res}, nil
	}
	return &Integer{Value: 0}, nil
}

func divInt(a, b int64, policy config.FloatPolicy) (Object, *Error) {
	if b == 0 {
		return nil, newError(NumericOverflow, "integer division of %d by zero", a)
	}
	// The one overflowing int64 division.
	if a == math.MinInt64 && b == -1 {
		return intOverflow(a, true, policy, "%d / %d overflows", a, b)
	}
	return &Integer{Value: a / b}, nil
}

func intOverflow(wrapped int64, positive bool, policy config.FloatPolicy, format string, args ...interface{}) (Object, *Error) {
	switch policy {
	case config.PolicyWrap:
		return &Integer{Value: wrapped}, nil
	case config.PolicyFlag:
		return nil, newError(NumericOverflow, format, args...)
	default: // saturate
		if positive {
			return &Integer{Value: math.MaxInt64}, nil
		}
		return &Integer{Value: math.MinInt64}, nil
	}
}

// Float arithmetic. Overflow means a finite computation produced an
// infinity; NaN from 0/0 is flagged the same way since no finite value
// represents it.

func floatArith(op string, a, b float64, policy config.FloatPolicy) (Object, *Error) {
	var res float64
	switch op {
	case "+":
		res = a + b
	case "-":
		res = a - b
	case "*":
		res = a * b
	case "/":
		res = a / b
	}

	if math.IsInf(res, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		switch policy {
		case config.PolicyWrap:
			return &Float{Value: res}, nil
		case config.PolicyFlag:
			return nil, newError(NumericOverflow, "%g %s %g overflows", a, op, b)
		default: // saturate
			if res > 0 {
				return &Float{Value: math.MaxFloat64}, nil
			}
			return &Float{Value: -math.MaxFloat64}, nil
		}
	}
	if math.IsNaN(res) && !math.IsNaN(a) && !math.IsNaN(b) {
		return nil, newError(NumericOverflow, "%g %s %g has no numeric result", a, op, b)
	}
	return &Float{Value: res}, nil
}
