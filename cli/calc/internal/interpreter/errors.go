package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"calckit/cli/calc/internal/opregistry"
)

// InvalidFormatError is returned when a line does not have exactly three tokens.
type InvalidFormatError struct {
	Tokens int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("Invalid format. Expected: operation operand1 operand2 (got %d tokens)", e.Tokens)
}

// InvalidOperandError is returned when an operand token is not a number.
type InvalidOperandError struct {
	Tokens []string
}

func (e *InvalidOperandError) Error() string {
	quoted := make([]string, len(e.Tokens))
	for i, tok := range e.Tokens {
		quoted[i] = "'" + tok + "'"
	}
	return "Operands must be numbers. Got " + strings.Join(quoted, " and ")
}

// Classified reports whether err is one of the expected per-command failures:
// malformed input, an unknown operation, or a domain error.
func Classified(err error) bool {
	var (
		format  *InvalidFormatError
		operand *InvalidOperandError
		unknown *opregistry.UnknownOperationError
		domain  *opregistry.DomainError
	)
	return errors.As(err, &format) ||
		errors.As(err, &operand) ||
		errors.As(err, &unknown) ||
		errors.As(err, &domain)
}

// Message renders err as the single line shown to the user.
func Message(err error) string {
	if Classified(err) {
		return "Error: " + err.Error()
	}
	return "Unexpected error: " + err.Error()
}
