package booking

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrSlotTaken  = errors.New("time slot overlaps an existing booking")
)

// ValidationError carries per-field failures up to the handler.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation error" }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// SlotConflictError names the booking already occupying the slot.
type SlotConflictError struct {
	ConflictingID string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("time slot overlaps booking %s", e.ConflictingID)
}

func (e *SlotConflictError) Is(target error) bool { return target == ErrSlotTaken }
