package interpreter

import (
	"errors"
	"strconv"
	"strings"
)

// Command is a parsed "operation operand1 operand2" line. Op keeps the case
// the user typed it in.
type Command struct {
	Op string
	A  float64
	B  float64
}

// Parse splits line on whitespace and converts the operands.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Command{}, &InvalidFormatError{Tokens: len(parts)}
	}
	a, okA := parseOperand(parts[1])
	b, okB := parseOperand(parts[2])
	if !okA || !okB {
		var bad []string
		if !okA {
			bad = append(bad, parts[1])
		}
		if !okB {
			bad = append(bad, parts[2])
		}
		return Command{}, &InvalidOperandError{Tokens: bad}
	}
	return Command{Op: parts[0], A: a, B: b}, nil
}

// parseOperand accepts anything strconv.ParseFloat does. Out-of-range values
// saturate to ±Inf instead of failing.
func parseOperand(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}
