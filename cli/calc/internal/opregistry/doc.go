// Package opregistry defines the operation registry used by the calculator.
// It maps lowercase operation names to functions of two float64 operands so
// that operation implementations can live in their own packages while the
// interpreter only deals with names. Registration happens once at startup;
// lookups after that are read-only.
package opregistry
