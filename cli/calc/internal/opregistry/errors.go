package opregistry

import (
	"fmt"
	"strings"
)

// UnknownOperationError is returned when a name has no registered operation.
type UnknownOperationError struct {
	Name      string
	Available []string
}

func (e *UnknownOperationError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("Unknown operation '%s'. No operations are registered", e.Name)
	}
	return fmt.Sprintf("Unknown operation '%s'. Available operations: %s", e.Name, strings.Join(e.Available, ", "))
}

// DuplicateRegistrationError is returned when a name is registered twice.
type DuplicateRegistrationError struct {
	Name string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("operation '%s' is already registered", e.Name)
}

// DomainError reports a failure inherent to the mathematics of an operation,
// as opposed to malformed input.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string { return e.Reason }
