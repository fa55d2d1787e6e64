package domain

import "fmt"

// InvalidInputError reports a value rejected before any computation ran.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s inválido (%v): %s", e.Field, e.Value, e.Reason)
}

func NewInvalidInput(field string, value float64, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}
