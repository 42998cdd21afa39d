package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/problemkit/attachment"
	"github.com/kbukum/problemkit/problem"
	"github.com/kbukum/problemkit/receiver"
)

// Validator collects field failures for programmatic validation.
type Validator struct {
	fields []attachment.Field
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		fields: make([]attachment.Field, 0),
	}
}

// AddError adds a field failure.
func (v *Validator) AddError(field, message string) {
	v.fields = append(v.fields, attachment.Field{
		Name:    field,
		Message: message,
	})
}

// HasErrors returns true if there are validation failures.
func (v *Validator) HasErrors() bool {
	return len(v.fields) > 0
}

// Errors returns all collected field failures.
func (v *Validator) Errors() []attachment.Field {
	return v.fields
}

// Problem returns the collected failures as a single problem chain tagged
// ErrValidation, with one Field attachment per bad field. Nil when clean.
func (v *Validator) Problem() *problem.Problem {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.fields))
	for i, f := range v.fields {
		messages[i] = f.String()
	}

	p := problem.New(strings.Join(messages, "; ")).Via(ErrValidation)
	for _, f := range v.fields {
		p = p.With(f)
	}
	return p
}

// Validate returns an error if there are validation failures, nil otherwise.
func (v *Validator) Validate() error {
	if p := v.Problem(); p != nil {
		return p
	}
	return nil
}

// Give hands the collected failures, if any, to a receiver.
func (v *Validator) Give(r receiver.Receiver) error {
	p := v.Problem()
	if p == nil {
		return nil
	}
	return r.Accept(p)
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// RequiredUUID checks if a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
		return v
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		v.AddError(field, "must be a valid UUID")
		return v
	}

	if parsed == uuid.Nil {
		v.AddError(field, "must not be empty")
	}

	return v
}

// OptionalUUID checks if a non-empty string is a valid UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if value == "" {
		return v
	}
	if _, err := uuid.Parse(value); err != nil {
		v.AddError(field, "must be a valid UUID")
	}
	return v
}

// MaxLength checks if a string is within max length.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.AddError(field, fmt.Sprintf("must be %d characters or less", maxLen))
	}
	return v
}

// MinLength checks if a string meets minimum length.
func (v *Validator) MinLength(field, value string, minLen int) *Validator {
	if len(value) < minLen {
		v.AddError(field, fmt.Sprintf("must be at least %d characters", minLen))
	}
	return v
}

// Range checks if a number is within a range.
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.AddError(field, fmt.Sprintf("must be between %d and %d", minVal, maxVal))
	}
	return v
}

// Min checks if a number meets minimum value.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be at least %d", minVal))
	}
	return v
}

// Max checks if a number is within max value.
func (v *Validator) Max(field string, value, maxVal int) *Validator {
	if value > maxVal {
		v.AddError(field, fmt.Sprintf("must be %d or less", maxVal))
	}
	return v
}

// Pattern checks if a string matches a regex pattern.
func (v *Validator) Pattern(field, value, pattern string) *Validator {
	if value == "" {
		return v
	}
	matched, err := regexp.MatchString(pattern, value)
	if err != nil || !matched {
		v.AddError(field, "does not match required format")
	}
	return v
}

// OneOf checks if a value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Required validates a single required field and returns an error if empty.
func Required(field, value string) error {
	return New().Required(field, value).Validate()
}

// ValidateUUID validates and parses a UUID string.
func ValidateUUID(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, problem.New(fmt.Sprintf("%s is required", field)).Via(ErrValidation)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, problem.Wrap(err).
			Via(problem.Message(fmt.Sprintf("%s must be a valid UUID", field))).
			Via(ErrValidation)
	}

	return id, nil
}
