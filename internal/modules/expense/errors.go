package expense

import "errors"

var ErrValidation = errors.New("validation error")

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation error" }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
