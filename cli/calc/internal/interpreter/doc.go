// Package interpreter implements the read-eval-print loop of the calculator.
//
// Each input line is either a special command (exit, help, history) or an
// "operation operand1 operand2" triple. Triples are parsed, dispatched through
// an opregistry.Registry, and the result or a classified error is written as
// a single line. No per-line failure ends the session; only exit, end of
// input, or an interrupt does.
package interpreter
