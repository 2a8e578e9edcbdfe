package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("conflict")
	ErrValidation           = errors.New("validation failed")
	ErrArchiveInstead       = errors.New("only draft articles can be deleted, archive instead")
	ErrConfirmationRequired = errors.New("explicit confirmation required")
	ErrPlanUnavailable      = errors.New("plan not available")
	ErrUpstream             = errors.New("upstream service error")
)

// ValidationError carries per-field messages. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
