// Package operations contains the built-in arithmetic operations.
//
// Usage:
//
//	r := opregistry.New()
//	if err := operations.Register(r); err != nil { ... }
//
// Each operation is a plain function of two float64 operands. Divide is the
// only one with a domain error; power follows math.Pow for edge cases such as
// a negative base with a fractional exponent (NaN) or overflow (+Inf).
package operations
