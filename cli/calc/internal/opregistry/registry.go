package opregistry

import (
	"errors"
	"fmt"
	"strings"
)

// Func computes a result from two operands. Failures inherent to the math
// should be reported as *DomainError.
type Func func(a, b float64) (float64, error)

// Registry maps operation names to functions.
type Registry struct {
	ops   map[string]Func
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{ops: make(map[string]Func)}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds fn under the lowercased name. It fails with
// *DuplicateRegistrationError if the name already exists, leaving the
// registry untouched.
func (r *Registry) Register(name string, fn Func) error {
	key := normalize(name)
	if key == "" {
		return errors.New("operation name is required")
	}
	if fn == nil {
		return fmt.Errorf("operation %s has no implementation", key)
	}
	if _, exists := r.ops[key]; exists {
		return &DuplicateRegistrationError{Name: key}
	}
	r.ops[key] = fn
	r.order = append(r.order, key)
	return nil
}

// MustRegister is Register for startup wiring. It panics on error.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the function registered under name.
func (r *Registry) Resolve(name string) (Func, error) {
	key := normalize(name)
	fn, ok := r.ops[key]
	if !ok {
		return nil, &UnknownOperationError{Name: key, Available: r.Names()}
	}
	return fn, nil
}

// Compute resolves name and applies it to a and b. Errors returned by the
// operation are passed through unchanged.
func (r *Registry) Compute(name string, a, b float64) (float64, error) {
	fn, err := r.Resolve(name)
	if err != nil {
		return 0, err
	}
	return fn(a, b)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports how many operations are registered.
func (r *Registry) Len() int { return len(r.order) }
