// Package form implements the draft lifecycle behind every admin form:
// load defaults or an existing record, mutate the draft, validate, submit.
// Validation failures never reach the network.
package form

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// ValidationError carries per-field messages and matches
// common.ErrValidation under errors.Is.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

// invalid wraps non-empty field errors, or returns nil when the draft is
// clean.
func invalid(fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func required(fields FieldErrors, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = "is required"
	}
}

func oneOf(fields FieldErrors, name, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	fields[name] = fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))
}
