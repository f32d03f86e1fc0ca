// Package validate accumulates field-level validation errors into a single error value.
package validate

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field path that failed validation, e.g. "nav[2].items[0].link"
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	subject string
	errors  []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	subject string
	errors  []Error
}

// New creates a validator for subject, the name used in error messages
// (e.g. "site config").
func New(subject string) *Validator {
	return &Validator{subject: subject, errors: make([]Error, 0)}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{subject: v.subject, errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}
	if len(e.errors) == 1 {
		return fmt.Sprintf("invalid %s: %s", e.subject, e.errors[0].Error())
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid %s (%d problems): %s", e.subject, len(e.errors), strings.Join(msgs, "; "))
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "must not be empty", value)
	}
}

// RootPath validates a root-relative site path: it starts with a single "/"
// and contains no whitespace.
func (v *Validator) RootPath(field, value string) {
	if value == "" {
		v.AddError(field, "path cannot be empty", value)
		return
	}
	if !strings.HasPrefix(value, "/") || strings.HasPrefix(value, "//") {
		v.AddError(field, "path must be root-relative (start with a single /)", value)
		return
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		v.AddError(field, "path must not contain whitespace", value)
	}
}

// URL validates an absolute URL string
func (v *Validator) URL(field, value string, allowedSchemes []string) {
	if value == "" {
		v.AddError(field, "URL cannot be empty", value)
		return
	}

	u, err := url.Parse(value)
	if err != nil {
		v.AddError(field, fmt.Sprintf("invalid URL: %v", err), value)
		return
	}

	if !u.IsAbs() || u.Host == "" {
		v.AddError(field, "URL must be absolute with a host", value)
		return
	}

	if len(allowedSchemes) > 0 {
		schemeValid := false
		for _, scheme := range allowedSchemes {
			if u.Scheme == scheme {
				schemeValid = true
				break
			}
		}
		if !schemeValid {
			v.AddError(field,
				fmt.Sprintf("unsupported URL scheme %q (allowed: %v)", u.Scheme, allowedSchemes),
				value)
		}
	}
}

// Port validates a TCP port number.
func (v *Validator) Port(field string, port int) {
	if port <= 0 || port > 65535 {
		v.AddError(field,
			fmt.Sprintf("port must be between 1 and 65535, got %d", port),
			port)
	}
}

// OneOf validates that value is one of the allowed strings.
func (v *Validator) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of %v", allowed), value)
}
