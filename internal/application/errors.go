package application

import (
	"errors"
	"sort"
	"strings"

	"github.com/oksasatya/health-planner/pkg/validation"
)

var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrNoEntries          = errors.New("no entries yet")
	ErrMealNotFound       = errors.New("meal not found")
	ErrNotificationFailed = errors.New("failed to send health plan email")
	ErrQueueUnavailable   = errors.New("email queue unavailable")
)

// ValidationError carries per-field messages for input rejected before any
// computation or persistence happens.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func invalidField(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// validateStruct runs the shared validator and converts failures to *ValidationError.
func validateStruct(v any) error {
	if err := validation.Struct(v); err != nil {
		return &ValidationError{Fields: validation.ToDetails(err)}
	}
	return nil
}
