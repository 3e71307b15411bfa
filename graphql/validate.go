package graphql

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// InputValueValidator is the optional validator object a MetaInputValue may
// carry. Validators are invoked concurrently during query
// execution and must be pure/internally synchronized — the
// Registry only stores and calls them, it never serializes access.
type InputValueValidator interface {
	Validate(value Value) error
}

// validatorFunc adapts a plain function to InputValueValidator.
type validatorFunc func(Value) error

func (f validatorFunc) Validate(value Value) error { return f(value) }

// ValidatorFunc wraps a function as an InputValueValidator.
func ValidatorFunc(f func(Value) error) InputValueValidator {
	return validatorFunc(f)
}

var sharedValidate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// TagValidator returns an InputValueValidator that runs go-playground/
// validator's struct-tag validation rules (e.g. "required,email,gte=0")
// against the parsed Go value behind an input value. This is the concrete
// validator object most applications will attach to a MetaInputValue; the
// registry itself stays agnostic of validation rule syntax.
func TagValidator(tag string) InputValueValidator {
	return validatorFunc(func(value Value) error {
		if err := sharedValidate().Var(value, tag); err != nil {
			return fmt.Errorf("input value failed validation %q: %w", tag, err)
		}
		return nil
	})
}
