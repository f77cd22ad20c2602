package operations

import (
	"math"

	"calckit/cli/calc/internal/opregistry"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = &opregistry.DomainError{Op: "divide", Reason: "division by zero"}

// Builtin pairs an operation name with its implementation.
type Builtin struct {
	Name string
	Fn   opregistry.Func
}

// Builtins lists the default operations in registration order.
func Builtins() []Builtin {
	return []Builtin{
		{Name: "add", Fn: Add},
		{Name: "subtract", Fn: Subtract},
		{Name: "multiply", Fn: Multiply},
		{Name: "divide", Fn: Divide},
		{Name: "power", Fn: Power},
	}
}

// Register adds every builtin to r, stopping at the first failure.
func Register(r *opregistry.Registry) error {
	for _, b := range Builtins() {
		if err := r.Register(b.Name, b.Fn); err != nil {
			return err
		}
	}
	return nil
}

func Add(a, b float64) (float64, error) { return a + b, nil }

func Subtract(a, b float64) (float64, error) { return a - b, nil }

func Multiply(a, b float64) (float64, error) { return a * b, nil }

// Divide returns a / b, or ErrDivisionByZero when b is zero (including -0).
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func Power(a, b float64) (float64, error) { return math.Pow(a, b), nil }
