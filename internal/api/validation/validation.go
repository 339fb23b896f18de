// Package validation implements declarative, per-endpoint request validation.
// Each endpoint declares a rule table mapping field names to checks; the
// table is evaluated against the decoded JSON body before any handler logic
// runs, and every violation is collected so the client sees all of them at
// once.
package validation

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"
)

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Check inspects a present field value and returns a violation message, or
// the empty string when the value passes.
type Check func(value interface{}) string

// Field is one row of a rule table. Checks run only when the field is
// present in the body; Required governs absence.
type Field struct {
	Name     string
	Required bool
	Checks   []Check
}

// Rules is the ordered rule table for one endpoint.
type Rules []Field

// Validate evaluates the rule table against a decoded JSON body and returns
// every violation found.
func (r Rules) Validate(body map[string]interface{}) []FieldError {
	var violations []FieldError

	for _, field := range r {
		value, present := body[field.Name]
		if !present || value == nil {
			if field.Required {
				violations = append(violations, FieldError{
					Field:   field.Name,
					Message: fmt.Sprintf("%s is required", field.Name),
				})
			}
			continue
		}

		for _, check := range field.Checks {
			if msg := check(value); msg != "" {
				violations = append(violations, FieldError{Field: field.Name, Message: msg})
			}
		}
	}

	return violations
}

// IsString requires the value to be a JSON string.
func IsString(value interface{}) string {
	if _, ok := value.(string); !ok {
		return "must be a string"
	}
	return ""
}

// IsEmail requires the value to be a syntactically valid email address.
func IsEmail(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return "must be a string"
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "must be a valid email address"
	}
	return ""
}

// IsUUID requires the value to be a valid UUID string.
func IsUUID(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return "must be a string"
	}
	if _, err := uuid.Parse(s); err != nil {
		return "must be a valid UUID"
	}
	return ""
}

// IsFloat requires the value to be a JSON number within [min, max].
func IsFloat(min, max float64) Check {
	return func(value interface{}) string {
		f, ok := value.(float64)
		if !ok {
			return "must be a number"
		}
		if f < min || f > max {
			return fmt.Sprintf("must be between %g and %g", min, max)
		}
		return ""
	}
}

// NotEmpty requires a string value to be non-empty.
func NotEmpty(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return "must be a string"
	}
	if s == "" {
		return "must not be empty"
	}
	return ""
}
