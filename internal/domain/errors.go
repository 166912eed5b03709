package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation           = errors.New("validation error")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrRender               = errors.New("document rendering failed")
)

// Validation messages shared by the domain and the form collector.
const (
	MsgRequired = "is required"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range sortedKeys(e.Fields) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MissingFieldsError reports required fields that were left empty. It matches
// both ErrMissingRequiredField and ErrValidation, and Fields lists the
// offending field names in a stable order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField.Error(), strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() []error {
	return []error{ErrMissingRequiredField, ErrValidation}
}

// FieldMessages returns the missing fields as a ValidationError-style map.
func (e *MissingFieldsError) FieldMessages() map[string]string {
	fields := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		fields[f] = MsgRequired
	}
	return fields
}

// NewMissingFieldsError returns nil when fields is empty.
func NewMissingFieldsError(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return &MissingFieldsError{Fields: sorted}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
